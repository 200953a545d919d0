//go:build !tinygo && !baremetal

// Command apblinksim replays a scenario of boot, wireless events and elapsed
// time through the firmware on a simulated board and prints the LED level
// after every step.
//
//	apblinksim --ssid ESPDEMO --password 0123456789 --scenario two-stations.yaml
//
// Flags can also be set from the environment, e.g. APBLINK_SSID.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/harveysanders/apblinky/firmware"
	"github.com/harveysanders/apblinky/platform"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:          "apblinksim",
		Short:        "Simulate the softAP connect-triggered blinker",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.String("ssid", "ESPDEMO", "softAP SSID")
	flags.Int("ssid-len", -1, "declared SSID byte length (-1: actual length)")
	flags.String("password", "0123456789", "softAP password")
	flags.Int("password-len", -1, "declared password byte length (-1: actual length)")
	flags.String("auth", platform.AuthWPA2PSK.String(), "auth mode: open, wep, wpa_psk, wpa2_psk, wpa_wpa2_psk")
	flags.Uint8("led-pin", 2, "GPIO pin of the status LED")
	flags.String("scenario", "", "YAML scenario file (default: one station, three ticks)")
	flags.BoolP("verbose", "v", false, "log firmware events to stderr")

	v.SetEnvPrefix("APBLINK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	settings, err := settingsFrom(v)
	if err != nil {
		return err
	}

	sc := defaultScenario
	if path := v.GetString("scenario"); path != "" {
		sc, err = LoadScenario(path)
		if err != nil {
			return err
		}
	}

	logLevel := slog.Level(127)
	if v.GetBool("verbose") {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: logLevel}))

	out := cmd.OutOrStdout()
	if sc.Name != "" {
		fmt.Fprintf(out, "# %s\n", sc.Name)
	}
	res, err := Run(out, settings, uint8(v.GetUint("led-pin")), sc, logger)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "ssid=%q led=%s ticks=%d elapsed=%v armed=%t dropped=%d\n",
		res.SSID, level(res.LED), res.Ticks, res.Elapsed, res.TimerArmed, res.Dropped)
	return nil
}

func settingsFrom(v *viper.Viper) (firmware.Settings, error) {
	mode, err := platform.ParseAuthMode(v.GetString("auth"))
	if err != nil {
		return firmware.Settings{}, err
	}
	s := firmware.Settings{
		SSID:        v.GetString("ssid"),
		SSIDLen:     v.GetInt("ssid-len"),
		Password:    v.GetString("password"),
		PasswordLen: v.GetInt("password-len"),
		AuthMode:    mode,
	}
	if s.SSIDLen < 0 {
		s.SSIDLen = len(s.SSID)
	}
	if s.PasswordLen < 0 {
		s.PasswordLen = len(s.Password)
	}
	return s, nil
}
