//go:build !tinygo && !baremetal

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harveysanders/apblinky/firmware"
	"github.com/harveysanders/apblinky/platform"
	"github.com/harveysanders/apblinky/platform/sim"
)

// Scenario is a scripted run of the firmware on the simulated board.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step does exactly one of: boot the board, deliver a wireless event,
// advance simulated time, or force the LED level.
type Step struct {
	Boot    bool          `yaml:"boot,omitempty"`
	Event   string        `yaml:"event,omitempty"`
	MAC     string        `yaml:"mac,omitempty"`
	AID     uint8         `yaml:"aid,omitempty"`
	Advance time.Duration `yaml:"advance,omitempty"`
	LED     *bool         `yaml:"led,omitempty"`
}

// defaultScenario boots, connects one station and watches three ticks.
var defaultScenario = Scenario{
	Name: "one station, three ticks",
	Steps: []Step{
		{Boot: true},
		{Event: platform.EventSoftAPStationConnected.String(), MAC: "02:00:00:00:00:01", AID: 1},
		{Advance: 3 * time.Second},
	},
}

// LoadScenario reads a YAML scenario file.
func LoadScenario(path string) (Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, err
	}
	var sc Scenario
	err = yaml.Unmarshal(b, &sc)
	if err != nil {
		return Scenario{}, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if len(sc.Steps) == 0 {
		return Scenario{}, fmt.Errorf("scenario %s has no steps", path)
	}
	return sc, nil
}

// Result summarizes a run.
type Result struct {
	LED        bool
	Ticks      uint64
	Elapsed    time.Duration
	SSID       string
	TimerArmed bool
	Dropped    int
}

// Run executes sc against a fresh simulated board, writing one line per
// step to w.
func Run(w io.Writer, settings firmware.Settings, ledPin uint8, sc Scenario, logger *slog.Logger) (Result, error) {
	p := sim.New()
	timer := p.NewTimer()
	fw, err := firmware.New(firmware.Board{
		Runtime: p,
		GPIO:    p.GPIO(),
		Timer:   timer,
		SoftAP:  p.SoftAP(),
		LEDMask: platform.Bit(ledPin),
		Logger:  logger,
	}, settings)
	if err != nil {
		return Result{}, err
	}
	fw.Boot()

	for i, st := range sc.Steps {
		desc, err := apply(p, st, platform.Bit(ledPin))
		if err != nil {
			return Result{}, fmt.Errorf("step %d: %w", i+1, err)
		}
		fmt.Fprintf(w, "%v\t%s\tled=%s\tticks=%d\ttimers=%d\n",
			p.Now(), desc, level(p.GPIO().Level(ledPin)), fw.Blinker().Ticks(), timer.Active())
	}

	cfg := p.SoftAP().Config()
	return Result{
		LED:        p.GPIO().Level(ledPin),
		Ticks:      fw.Blinker().Ticks(),
		Elapsed:    p.Now(),
		SSID:       cfg.BroadcastSSID(),
		TimerArmed: timer.Armed(),
		Dropped:    p.Dropped(),
	}, nil
}

func apply(p *sim.Platform, st Step, ledMask uint32) (string, error) {
	switch {
	case st.Boot:
		if !p.Boot() {
			return "", errors.New("board already booted")
		}
		return "boot", nil
	case st.Event != "":
		tag, err := platform.ParseEventTag(st.Event)
		if err != nil {
			return "", err
		}
		ev := platform.Event{Tag: tag}
		if st.MAC != "" {
			hw, err := net.ParseMAC(st.MAC)
			if err != nil {
				return "", err
			}
			if len(hw) != 6 {
				return "", fmt.Errorf("mac %s is not 6 bytes", st.MAC)
			}
			var info platform.StationInfo
			copy(info.MAC[:], hw)
			info.AID = st.AID
			ev.Payload = info
		}
		if !p.Deliver(ev) {
			return "event " + st.Event + " (dropped)", nil
		}
		return "event " + st.Event, nil
	case st.Advance > 0:
		p.Advance(st.Advance)
		return "advance " + st.Advance.String(), nil
	case st.LED != nil:
		out := p.GPIO().Output()
		if *st.LED {
			out |= ledMask
		} else {
			out &^= ledMask
		}
		p.GPIO().Preset(out)
		return "preset led=" + level(*st.LED), nil
	}
	return "", errors.New("empty step")
}

func level(on bool) string {
	if on {
		return "1"
	}
	return "0"
}
