// Command astrokit prints positions of the Sun, the Moon and the
// planets, and the everyday events derived from them.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/spf13/cobra"

	"github.com/thurmanmarka/astrokit"
	"github.com/thurmanmarka/astrokit/moon"
	"github.com/thurmanmarka/astrokit/sun"
	"github.com/thurmanmarka/astrokit/timeutil"
)

var (
	flagTime string
	flagTZ   string
	flagBody string
	flagLat  float64
	flagLon  float64
	flagDate string
)

var rootCmd = &cobra.Command{
	Use:   "astrokit",
	Short: "Practical astronomy calculations",
	Long: "Astrokit computes positions of the Sun, the Moon and the planets,\n" +
		"and everyday events derived from them: rise and set, twilight,\n" +
		"seasons and lunar phases.",
}

var julianCmd = &cobra.Command{
	Use:   "julian",
	Short: "Convert a civil time to Julian day numbers",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := parseTime()
		if err != nil {
			return err
		}
		djd := timeutil.FromTime(t)
		fmt.Printf("UTC : %s\n", t.UTC().Format(time.RFC3339))
		fmt.Printf("JD  : %.6f\n", djd+timeutil.DJDToJD)
		fmt.Printf("DJD : %.6f (days since 1900 Jan 0.5)\n", djd)
		return nil
	},
}

var positionCmd = &cobra.Command{
	Use:   "position",
	Short: "Apparent geocentric position of a body",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := parseTime()
		if err != nil {
			return err
		}
		body, err := astrokit.ParseBody(flagBody)
		if err != nil {
			return err
		}
		ecl, err := astrokit.PositionAt(body, t)
		if err != nil {
			return err
		}
		equ, err := astrokit.EquatorialAt(body, t)
		if err != nil {
			return err
		}
		fmt.Printf("%s at %s\n", body, t.UTC().Format(time.RFC3339))
		fmt.Printf("  Ecliptic   : lng %.5f°  lat %.5f°\n", ecl.Lng.Deg(), ecl.Lat.Deg())
		fmt.Printf("  Equatorial : RA %v  Dec %v\n", sexa.FmtRA(equ.RA), sexa.FmtAngle(equ.Dec))
		fmt.Printf("  Distance   : %.6f AU\n", ecl.Delta)
		return nil
	},
}

var seasonsCmd = &cobra.Command{
	Use:   "seasons [year]",
	Short: "Equinoxes and solstices of a year",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year := time.Now().Year()
		if len(args) == 1 {
			y, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q: %w", args[0], err)
			}
			year = y
		}
		kinds := []sun.EventKind{
			sun.MarchEquinox, sun.JuneSolstice,
			sun.SeptemberEquinox, sun.DecemberSolstice,
		}
		for _, k := range kinds {
			evt, err := astrokit.Season(year, k)
			if err != nil {
				return err
			}
			fmt.Printf("%-18s: %s\n", k, evt.Format("2006-01-02 15:04 UTC"))
		}
		return nil
	},
}

var phaseCmd = &cobra.Command{
	Use:   "phase",
	Short: "Moon phase and illuminated fraction",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := parseTime()
		if err != nil {
			return err
		}
		phase, err := astrokit.MoonPhaseAt(t)
		if err != nil {
			return err
		}
		fmt.Printf("Moon phase at %s\n", phase.Time.Format(time.RFC3339))
		fmt.Printf("  Name       : %s\n", phase.Name)
		fmt.Printf("  Fraction   : %.3f (%.1f%% illuminated)\n", phase.Fraction, phase.Fraction*100)
		fmt.Printf("  Elongation : %.2f°\n", phase.Elongation)
		if phase.Waxing {
			fmt.Println("  Trend      : Waxing (illumination increasing)")
		} else {
			fmt.Println("  Trend      : Waning (illumination decreasing)")
		}
		for _, q := range []moon.Quarter{moon.NewMoon, moon.FirstQuarter, moon.FullMoon, moon.LastQuarter} {
			qt, err := astrokit.QuarterTime(q, t)
			if err != nil {
				return err
			}
			fmt.Printf("  %-13s: %s\n", q, qt.Format("2006-01-02 15:04 UTC"))
		}
		return nil
	},
}

var risesetCmd = &cobra.Command{
	Use:   "riseset",
	Short: "Rise and set times of a body",
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := astrokit.ParseBody(flagBody)
		if err != nil {
			return err
		}
		loc, err := time.LoadLocation(flagTZ)
		if err != nil {
			return fmt.Errorf("invalid time zone %q: %w", flagTZ, err)
		}
		date := time.Now().In(loc)
		if flagDate != "" {
			date, err = time.ParseInLocation("2006-01-02", flagDate, loc)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", flagDate, err)
			}
		}
		coords := astrokit.Coordinates{Lat: flagLat, Lon: flagLon}
		rs, err := astrokit.RiseSetFor(body, coords, date)
		if err != nil {
			return err
		}
		fmt.Printf("%s rise/set for lat=%.4f lon=%.4f on %s\n",
			body, coords.Lat, coords.Lon, date.Format("2006-01-02"))
		if !rs.Rise.IsZero() {
			fmt.Printf("  Rise: %s\n", rs.Rise.Format(time.RFC3339))
		}
		if !rs.Set.IsZero() {
			fmt.Printf("  Set : %s\n", rs.Set.Format(time.RFC3339))
		}
		return nil
	},
}

// parseTime resolves the --time and --tz flags, defaulting to now.
func parseTime() (time.Time, error) {
	loc, err := time.LoadLocation(flagTZ)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time zone %q: %w", flagTZ, err)
	}
	if flagTime == "" {
		return time.Now().In(loc), nil
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	var parseErr error
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, flagTime, loc)
		if err == nil {
			return t, nil
		}
		parseErr = err
	}
	return time.Time{}, fmt.Errorf("could not parse time %q: %w", flagTime, parseErr)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTime, "time", "", "time (RFC3339, 'YYYY-MM-DDTHH:MM' or 'YYYY-MM-DD'; default now)")
	rootCmd.PersistentFlags().StringVar(&flagTZ, "tz", "UTC", "IANA time zone name (e.g. America/Phoenix)")

	positionCmd.Flags().StringVar(&flagBody, "body", "sun", "celestial body: sun, moon, mercury ... pluto")

	risesetCmd.Flags().StringVar(&flagBody, "body", "sun", "celestial body: sun, moon, mercury ... pluto")
	risesetCmd.Flags().Float64Var(&flagLat, "lat", 0, "latitude in degrees (north positive)")
	risesetCmd.Flags().Float64Var(&flagLon, "lon", 0, "longitude in degrees (east positive, west negative)")
	risesetCmd.Flags().StringVar(&flagDate, "date", "", "date in YYYY-MM-DD (default today in --tz)")

	rootCmd.AddCommand(julianCmd, positionCmd, seasonsCmd, phaseCmd, risesetCmd)
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
