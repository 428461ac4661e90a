// Command seasons-render writes both widgets for one date and hour as SVG or
// PNG files and can print the info panel and an ASCII day curve.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/tobyhogan/seasons-viewer-tool/internal/app"
	"github.com/tobyhogan/seasons-viewer-tool/internal/charts"
	"github.com/tobyhogan/seasons-viewer-tool/internal/log"
	"github.com/tobyhogan/seasons-viewer-tool/internal/render"
	"github.com/tobyhogan/seasons-viewer-tool/internal/session"
	"github.com/tobyhogan/seasons-viewer-tool/internal/views/daycurve"
	"github.com/tobyhogan/seasons-viewer-tool/pkg/markers"
)

type options struct {
	cfgFile string
	envFile string
	outDir  string
	format  string
	date    string
	hour    float64
	mode    string
	scheme  string
	variant string
	ascii   bool
	panel   bool
	charts  bool
}

func main() {
	var o options
	flag.StringVar(&o.cfgFile, "config", "", "Path to a YAML configuration file; built-in defaults are used when empty")
	flag.StringVar(&o.envFile, "env", ".env", ".env file with SEASONS_* overrides; skipped when missing")
	flag.StringVar(&o.outDir, "out-dir", ".", "Directory the images are written to")
	flag.StringVar(&o.format, "format", "svg", "Image format: svg or png")
	flag.StringVar(&o.date, "date", "", "Date to show (YYYY-MM-DD); defaults to today (UTC)")
	flag.Float64Var(&o.hour, "hour", -1, "UTC hour to show, 0 to 24; defaults to now")
	flag.StringVar(&o.mode, "mode", "", "Marker mode: time, intensity, temperature or combined")
	flag.StringVar(&o.scheme, "scheme", "", "Color scheme: light or dark")
	flag.StringVar(&o.variant, "variant", "", "Day curve: elevation or intensity")
	flag.BoolVar(&o.ascii, "ascii", false, "Print the day curve as an ASCII chart")
	flag.BoolVar(&o.panel, "panel", false, "Print the info panel")
	flag.BoolVar(&o.charts, "charts", false, "Also write the annual and monthly daylight charts")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	flag.Parse()

	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(o, time.Now(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// instant combines the -date and -hour flags, filling either from now.
func instant(date string, hour float64, now time.Time) (time.Time, error) {
	now = now.UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date != "" {
		var err error
		day, err = time.Parse("2006-01-02", date)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid -date %q: %w", date, err)
		}
	}
	if hour < 0 {
		hour = now.Sub(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)).Hours()
	}
	if hour > 24 {
		return time.Time{}, fmt.Errorf("-hour %v is past the end of the day", hour)
	}
	return day.Add(time.Duration(hour * float64(time.Hour))), nil
}

func run(o options, now time.Time, stdout io.Writer) error {
	provider, err := app.LoadConfig(o.cfgFile, o.envFile)
	if err != nil {
		return err
	}
	cfg, err := provider.LoadConfig()
	if err != nil {
		return err
	}
	opts, err := app.SessionOptions(cfg)
	if err != nil {
		return err
	}
	if o.mode != "" {
		if opts.Mode, err = markers.ParseMode(o.mode); err != nil {
			return err
		}
	}
	if o.scheme != "" {
		if opts.Scheme, err = render.SchemeByName(o.scheme); err != nil {
			return err
		}
	}
	if o.variant != "" {
		if opts.Variant, err = daycurve.ParseVariant(o.variant); err != nil {
			return err
		}
	}
	format, err := render.ParseFormat(o.format)
	if err != nil {
		return err
	}
	t, err := instant(o.date, o.hour, now)
	if err != nil {
		return err
	}

	s := session.New("render", opts, session.FixedClock{T: t})
	if err := os.MkdirAll(o.outDir, 0o755); err != nil {
		return fmt.Errorf("error creating %s: %w", o.outDir, err)
	}
	for _, w := range []session.Widget{session.WidgetYear, session.WidgetDay} {
		width, height := s.Size(w)
		path := filepath.Join(o.outDir, string(w)+"."+string(format))
		err := writeFile(path, func(f io.Writer) error {
			return render.Encode(f, format, int(width), int(height), func(r render.Renderer) { s.Render(w, r) })
		})
		if err != nil {
			return err
		}
		log.Infof("wrote %s", path)
	}

	if o.charts {
		year := t.Year()
		annual := filepath.Join(o.outDir, "annual."+string(format))
		if err := writeFile(annual, func(f io.Writer) error { return charts.Annual(f, year, format, 720, 400) }); err != nil {
			return err
		}
		daylight := filepath.Join(o.outDir, "daylight.png")
		err := writeFile(daylight, func(f io.Writer) error {
			return charts.DaylightChart(f, year, opts.Latitude, opts.Longitude, opts.Scheme)
		})
		if err != nil {
			return err
		}
		log.Infof("wrote %s and %s", annual, daylight)
	}

	if o.panel {
		fmt.Fprintln(stdout, renderPanel(s.Info(), cfg.Location.Name))
	}
	if o.ascii {
		st := s.State()
		v := daycurve.New(opts.DayView, opts.Variant, t, opts.Latitude, opts.Longitude, st.Hour)
		fmt.Fprintln(stdout, charts.ASCIIDayCurve(v, 72, 12))
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}
