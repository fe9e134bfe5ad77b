package main

import (
	"flag"
	"os"
	"os/signal"
	"time"

	prefixed "github.com/BertoldVdb/logrus-prefixed-formatter"
	"github.com/cgxeiji/tsl256x"
	"github.com/cgxeiji/tsl256x/tsl2561"
	"github.com/sirupsen/logrus"
)

func newLogger(level int) *logrus.Entry {
	logrus.ErrorKey = "$error"
	logger := logrus.New()
	logger.SetLevel(logrus.Level(level))
	formatter := new(prefixed.TextFormatter)
	formatter.TimestampFormat = "2006-01-02 15:04:05"
	formatter.FullTimestamp = true
	formatter.SpacePadding = 50
	logger.SetFormatter(formatter)
	return logrus.NewEntry(logger).WithField("prefix", "tsl256x")
}

func main() {
	busName := flag.String("bus", "", "I2C bus name (\"/dev/i2c-1\", \"I2C1\", \"1\"), empty selects the first bus")
	sysfs := flag.String("sysfs", "", "path of an I2C device (\"/dev/i2c-1\") to use through go-i2c instead of periph.io")
	addr := flag.Uint("addr", uint(tsl2561.DefaultAddr), "slave address (0x29, 0x39 or 0x49)")
	integ := flag.Int("integ", 402, "integration time in ms (13, 101 or 402)")
	gain := flag.Int("gain", 1, "gain (1 or 16)")
	interval := flag.Duration("interval", 500*time.Millisecond, "sampling interval")
	loglevel := flag.Int("loglevel", int(logrus.InfoLevel), "the loglevel to use, from 0 to 6")
	flag.Parse()

	log := newLogger(*loglevel)

	var it tsl2561.IntegrationTime
	switch *integ {
	case 13:
		it = tsl2561.Integ13ms
	case 101:
		it = tsl2561.Integ101ms
	case 402:
		it = tsl2561.Integ402ms
	default:
		log.Fatalf("invalid integration time %dms", *integ)
	}

	var g tsl2561.Gain
	switch *gain {
	case 1:
		g = tsl2561.GainLow
	case 16:
		g = tsl2561.GainHigh
	default:
		log.Fatalf("invalid gain %dx", *gain)
	}

	opts := []tsl256x.Option{
		tsl256x.OnAddr(tsl2561.Addr(*addr)),
		tsl256x.WithTiming(it, g),
		tsl256x.WithLogger(log),
	}

	var sensor *tsl256x.Device
	var err error
	if *sysfs != "" {
		sensor, err = tsl256x.OpenSysfs(*sysfs, opts...)
	} else {
		sensor, err = tsl256x.New(append(opts, tsl256x.OnBus(*busName))...)
	}
	if err != nil {
		log.WithError(err).Fatal("could not open sensor")
	}
	defer sensor.Close()

	log.WithFields(logrus.Fields{
		"addr":        sensor.Addr(),
		"integration": it,
		"gain":        g,
	}).Info("sensor powered on")

	// The first integration period runs with the power-on settings.
	time.Sleep(tsl2561.Integ402ms.Duration() + it.Duration())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	t := time.NewTicker(*interval)
	defer t.Stop()

	for {
		select {
		case <-sig:
			log.Info("stopping")
			return
		case <-t.C:
		}

		s, err := sensor.Sample()
		if err != nil {
			log.WithError(err).Error("could not read sensor")
			continue
		}
		w := sensor.Window(tsl2561.Channel0)
		log.WithFields(logrus.Fields{
			"visible+ir": s.VisibleIR,
			"ir":         s.IR,
			"min":        w.Min,
			"max":        w.Max,
			"mean":       int(w.Mean),
		}).Info("sample")
	}
}
