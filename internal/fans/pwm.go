package fans

import (
	"fmt"
	"os"
	"time"

	"github.com/mrivnak/pi-fan/internal/configuration"
	"github.com/mrivnak/pi-fan/internal/ui"
	"github.com/mrivnak/pi-fan/internal/util"
)

// SysfsPwmFan drives a channel of a hardware PWM chip through the
// kernel pwm class. The channel is exported and enabled with normal
// polarity during Init and stays enabled for the process lifetime.
type SysfsPwmFan struct {
	Config   configuration.FanConfig `json:"configuration"`
	periodNs int
}

func (fan SysfsPwmFan) GetId() string {
	return fmt.Sprintf("pwmchip%d/pwm%d", fan.Config.Pwm.Chip, fan.Config.Pwm.Channel)
}

func (fan SysfsPwmFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan SysfsPwmFan) chipPath() string {
	return fmt.Sprintf("/sys/class/pwm/pwmchip%d", fan.Config.Pwm.Chip)
}

func (fan SysfsPwmFan) channelPath() string {
	return fmt.Sprintf("%s/pwm%d", fan.chipPath(), fan.Config.Pwm.Channel)
}

func (fan *SysfsPwmFan) Init() error {
	pwmConfig := fan.Config.Pwm

	if _, err := os.Stat(fan.channelPath()); os.IsNotExist(err) {
		err = util.WriteIntToFile(pwmConfig.Channel, fan.chipPath()+"/export")
		if err != nil {
			return fmt.Errorf("fan %s: unable to export pwm channel: %w", fan.GetId(), err)
		}
		// udev needs a moment to set up the channel attributes
		time.Sleep(100 * time.Millisecond)
	}

	fan.periodNs = int(time.Second.Nanoseconds()) / pwmConfig.Frequency

	err := util.WriteIntToFile(fan.periodNs, fan.channelPath()+"/period")
	if err != nil {
		return fmt.Errorf("fan %s: unable to set period: %w", fan.GetId(), err)
	}
	err = util.WriteIntToFile(0, fan.channelPath()+"/duty_cycle")
	if err != nil {
		return fmt.Errorf("fan %s: unable to reset duty cycle: %w", fan.GetId(), err)
	}
	err = os.WriteFile(fan.channelPath()+"/polarity", []byte("normal"), 0644)
	if err != nil {
		return fmt.Errorf("fan %s: unable to set polarity: %w", fan.GetId(), err)
	}
	err = util.WriteIntToFile(1, fan.channelPath()+"/enable")
	if err != nil {
		return fmt.Errorf("fan %s: unable to enable pwm output: %w", fan.GetId(), err)
	}

	return nil
}

func (fan *SysfsPwmFan) SetPwm(pwm int) error {
	ui.Debug("Setting %s to %d ...", fan.GetId(), pwm)

	dutyNs := fan.periodNs * util.Coerce(pwm, MinPwmValue, PwmCycleLength) / PwmCycleLength
	return util.WriteIntToFile(dutyNs, fan.channelPath()+"/duty_cycle")
}

func (fan SysfsPwmFan) GetPwm() (int, error) {
	dutyNs, err := util.ReadIntFromFile(fan.channelPath() + "/duty_cycle")
	if err != nil {
		return MinPwmValue, err
	}
	if fan.periodNs <= 0 {
		return MinPwmValue, fmt.Errorf("fan %s: not initialized", fan.GetId())
	}
	return dutyNs * PwmCycleLength / fan.periodNs, nil
}
