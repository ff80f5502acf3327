package fans

import (
	"os/user"
	"path/filepath"
	"strings"

	"github.com/mrivnak/pi-fan/internal/configuration"
	"github.com/mrivnak/pi-fan/internal/ui"
	"github.com/mrivnak/pi-fan/internal/util"
)

type FileFan struct {
	Config configuration.FanConfig `json:"configuration"`
}

func (fan FileFan) GetId() string {
	return "file"
}

func (fan FileFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan *FileFan) Init() error {
	return nil
}

func (fan *FileFan) SetPwm(pwm int) error {
	filePath, err := fan.resolvePath()
	if err != nil {
		return err
	}

	err = util.WriteIntToFileAtomic(pwm, filePath)
	if err != nil {
		ui.Error("Unable to write to file: %v", filePath)
	}
	return err
}

func (fan FileFan) GetPwm() (int, error) {
	filePath, err := fan.resolvePath()
	if err != nil {
		return MinPwmValue, err
	}

	return util.ReadIntFromFile(filePath)
}

func (fan FileFan) resolvePath() (string, error) {
	filePath := fan.Config.File.Path
	// resolve home dir path
	if strings.HasPrefix(filePath, "~") {
		currentUser, err := user.Current()
		if err != nil {
			return "", err
		}

		filePath = filepath.Join(currentUser.HomeDir, filePath[1:])
	}
	return filePath, nil
}
