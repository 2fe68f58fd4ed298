// Command moqview is a demo host for the moqclient runtime. It creates
// one client, polls it at the reference 60Hz cadence, and reports
// connection status and frame statistics. Rendering is out of scope; the
// received RGBA frames are only counted and sized.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/opd-ai/moqclient"
	"github.com/opd-ai/moqclient/client"
	"github.com/opd-ai/moqclient/transport/ws"
)

var (
	flagServer    string
	flagName      string
	flagLatency   int
	flagDuration  time.Duration
	flagSynthetic bool
	flagVerbose   bool
)

func init() {
	flag.StringVarP(&flagServer, "server", "s", "wss://localhost:4443", "URL of the stream relay server")
	flag.StringVarP(&flagName, "name", "n", "desktop", "Stream name to subscribe to")
	flag.IntVar(&flagLatency, "latency", 500, "Target latency in milliseconds")
	flag.DurationVarP(&flagDuration, "duration", "d", 0, "Stop after this long (0 = run until interrupted)")
	flag.BoolVar(&flagSynthetic, "synthetic", false, "Use the built-in gradient generator instead of a network source")
	flag.BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose logging")
}

func main() {
	flag.Parse()

	logrus.SetLevel(logrus.InfoLevel)
	if flagVerbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg := client.Config{
		ServerAddress: flagServer,
		StreamPath:    flagName,
		TargetLatency: time.Duration(flagLatency) * time.Millisecond,
	}
	if !flagSynthetic {
		cfg.Source = &ws.Source{}
	}

	reg := moqclient.NewRegistry()
	handle := reg.Create(cfg)
	defer reg.Destroy(handle)

	if err := pollLoop(reg, handle); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "moqview: %v\n", err)
		os.Exit(1)
	}
}

// pollLoop drives the client at ~60Hz until interrupted, the duration
// elapses, or the session enters an error state.
func pollLoop(reg *moqclient.Registry, handle moqclient.Handle) error {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	var deadline <-chan time.Time
	if flagDuration > 0 {
		deadline = time.After(flagDuration)
	}

	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	ticker := time.NewTicker(client.DefaultFrameInterval)
	defer ticker.Stop()

	report := time.NewTicker(time.Second)
	defer report.Stop()

	var (
		frames     uint64
		lastStatus = client.Status(-128)
		buf        []byte
	)

	for {
		select {
		case <-interrupt:
			fmt.Println()
			return nil
		case <-deadline:
			return nil
		case <-report.C:
			yellow.Printf("frames received: %d\n", frames)
		case <-ticker.C:
		}

		alive := reg.Update(handle)
		if status := reg.ConnectionStatus(handle); status != lastStatus {
			lastStatus = status
			green.Printf("status: %s\n", status)
		}
		if !alive {
			return fmt.Errorf("session failed: %s", lastStatus)
		}

		w, h, ok := reg.FrameInfo(handle)
		if !ok {
			continue
		}
		if need := w * h * client.BytesPerPixel; len(buf) < need {
			buf = make([]byte, need)
		}
		if reg.FrameData(handle, buf) {
			frames++
			logrus.WithFields(logrus.Fields{
				"function": "pollLoop",
				"width":    w,
				"height":   h,
				"frames":   frames,
			}).Debug("Frame consumed")
		}
	}
}
