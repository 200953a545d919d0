//go:build !tinygo && !baremetal

package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/harveysanders/apblinky/firmware"
	"github.com/harveysanders/apblinky/platform"
)

var demo = firmware.Settings{
	SSID:        "ESPDEMO",
	SSIDLen:     7,
	Password:    "0123456789",
	PasswordLen: 10,
	AuthMode:    platform.AuthWPA2PSK,
}

func TestRunDefaultScenario(t *testing.T) {
	var out bytes.Buffer
	res, err := Run(&out, demo, 2, defaultScenario, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !res.LED || res.Ticks != 3 {
		t.Errorf("led=%t ticks=%d, want led on after 3 ticks", res.LED, res.Ticks)
	}
	if res.SSID != "ESPDEMO" || !res.TimerArmed {
		t.Errorf("Result = %+v", res)
	}
	if lines := strings.Count(out.String(), "\n"); lines != len(defaultScenario.Steps) {
		t.Errorf("%d output lines, want %d:\n%s", lines, len(defaultScenario.Steps), out.String())
	}
}

func TestRunScenarioFile(t *testing.T) {
	sc, err := LoadScenario("testdata/two-stations.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if len(sc.Steps) != 9 || sc.Steps[2].Advance != 2*time.Second {
		t.Fatalf("parsed %d steps: %+v", len(sc.Steps), sc.Steps)
	}

	var out bytes.Buffer
	res, err := Run(&out, demo, 2, sc, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := Result{
		LED:        false,
		Ticks:      4,
		Elapsed:    6500 * time.Millisecond,
		SSID:       "ESPDEMO",
		TimerArmed: true,
		Dropped:    1,
	}
	if res != want {
		t.Errorf("Result = %+v, want %+v", res, want)
	}
	if !strings.Contains(out.String(), "(dropped)") {
		t.Errorf("output does not mark the dropped event:\n%s", out.String())
	}
}

func TestRunStepErrors(t *testing.T) {
	tests := map[string]Step{
		"unknown event": {Event: "softap_sta_joined"},
		"bad mac":       {Event: "softap_sta_connected", MAC: "zz"},
		"empty":         {},
	}
	for name, st := range tests {
		t.Run(name, func(t *testing.T) {
			sc := Scenario{Steps: []Step{{Boot: true}, st}}
			if _, err := Run(&bytes.Buffer{}, demo, 2, sc, nil); err == nil {
				t.Error("Run() accepted a bad step")
			}
		})
	}
	sc := Scenario{Steps: []Step{{Boot: true}, {Boot: true}}}
	if _, err := Run(&bytes.Buffer{}, demo, 2, sc, nil); err == nil {
		t.Error("Run() booted twice")
	}
}

func TestRunPresetLED(t *testing.T) {
	on := true
	sc := Scenario{Steps: []Step{
		{Boot: true},
		{LED: &on},
		{Event: "softap_sta_connected"},
		{Advance: 2 * time.Second},
	}}
	res, err := Run(&bytes.Buffer{}, demo, 2, sc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !res.LED || res.Ticks != 2 {
		t.Errorf("led=%t ticks=%d, want led on after two ticks from high", res.LED, res.Ticks)
	}
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "defaults", want: `ssid="ESPDEMO" led=1 ticks=3`},
		{name: "scenario", args: []string{"--scenario", "testdata/two-stations.yaml"}, want: "ticks=4"},
		{name: "length mismatch", args: []string{"--ssid", "ESPDEMO", "--ssid-len", "8"}, wantErr: true},
		{name: "bad auth", args: []string{"--auth", "wpa3"}, wantErr: true},
		{name: "open network", args: []string{"--auth", "open", "--password", ""}, want: "ticks=3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			cmd := newRootCmd()
			cmd.SetOut(&out)
			cmd.SetErr(&errOut)
			cmd.SetArgs(tt.args)
			err := cmd.Execute()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Execute() succeeded:\n%s", out.String())
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute() error = %v\n%s", err, errOut.String())
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out.String())
			}
		})
	}
}
