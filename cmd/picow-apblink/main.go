//go:build tinygo

// Command picow-apblink runs the softAP blinker on a Raspberry Pi Pico W:
// once a station joins the access point the on-board LED toggles every
// second.
package main

import (
	"log/slog"
	"machine"
	"time"

	"github.com/harveysanders/apblinky/firmware"
	"github.com/harveysanders/apblinky/lcd"
	"github.com/harveysanders/apblinky/platform/picow"
)

func main() {
	logger := slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	settings, err := firmware.DefaultSettings()
	if err != nil {
		printErrForever(logger, "read build settings", slog.Any("reason", err))
	}

	board := picow.New(picow.Config{Logger: logger})

	lcdMessages := make(chan lcd.Message, 4)
	startDisplay(logger, lcdMessages)

	fw, err := firmware.New(firmware.Board{
		Runtime: board.Runtime(),
		GPIO:    board.GPIO(),
		Timer:   board.Timer(),
		SoftAP:  board.SoftAP(),
		LEDMask: picow.LEDMask,
		Logger:  logger,
		Display: lcdMessages,
	}, settings)
	if err != nil {
		// Print error in a loop in case the serial monitor is not
		// ready before the initial messages
		printErrForever(logger, "invalid softap credentials", slog.Any("reason", err))
	}
	fw.Boot()

	err = board.Start()
	if err != nil {
		printErrForever(logger, "radio bring-up", slog.Any("reason", err))
	}
	board.Run()
}

// startDisplay attaches the optional status LCD on I2C0 (GP4/GP5). The
// firmware runs without it.
func startDisplay(logger *slog.Logger, msgs chan lcd.Message) {
	err := machine.I2C0.Configure(machine.I2CConfig{
		SDA: machine.GP4,
		SCL: machine.GP5,
	})
	if err != nil {
		logger.Warn("configure I2C", slog.Any("reason", err))
		return
	}
	dev, err := lcd.Configure(machine.I2C0)
	if err != nil {
		logger.Warn("no status display", slog.Any("reason", err))
		return
	}
	go lcd.NewHandler(dev, msgs).Run()
}

// printErrForever prints a string to serial @ 1hz. It
// blocks forever.
func printErrForever(logger *slog.Logger, msg string, args ...any) {
	for {
		logger.Error(msg, args...)
		time.Sleep(time.Second)
	}
}
