package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"geo-attend/internal/attendance"
	"geo-attend/internal/geo"
	"geo-attend/internal/geofence"
	"geo-attend/internal/location"
	"geo-attend/internal/office"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// positionFlags binds --lat/--lng. Both or neither must be given.
type positionFlags struct {
	lat, lng float64
}

func (p *positionFlags) bind(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&p.lat, "lat", 0, "current latitude")
	cmd.Flags().Float64Var(&p.lng, "lng", 0, "current longitude")
}

func (p *positionFlags) location(cmd *cobra.Command) (*geo.Location, error) {
	latSet, lngSet := cmd.Flags().Changed("lat"), cmd.Flags().Changed("lng")
	if latSet != lngSet {
		return nil, fmt.Errorf("--lat and --lng must be given together")
	}
	if !latSet {
		return nil, nil
	}
	return &geo.Location{Latitude: p.lat, Longitude: p.lng}, nil
}

func newStatusCmd(open opener) *cobra.Command {
	var pos positionFlags
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show attendance status and the geofence for a position",
		RunE: func(cmd *cobra.Command, _ []string) error {
			loc, err := pos.location(cmd)
			if err != nil {
				return err
			}
			return withSession(open, func(s *session) error {
				svc := attendance.NewService(s.store, location.Fixed(loc), nil)
				st, err := svc.GetStatus(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(out, "status: %s\n", st.Status)
				if st.OfficeName == "" {
					_, _ = fmt.Fprintln(out, "office: not configured")
					return nil
				}
				_, _ = fmt.Fprintf(out, "office: %s (radius %sm)\n", st.OfficeName, strconv.FormatFloat(st.Radius, 'f', -1, 64))
				_, _ = fmt.Fprintf(out, "geofence: %s\ndistance: %s\n", st.Geofence, st.DistanceText)
				if st.Hint != "" {
					_, _ = fmt.Fprintln(out, st.Hint)
				}
				return nil
			})
		},
	}
	pos.bind(cmd)
	return cmd
}

func newHistoryCmd(open opener) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List attendance records, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(open, func(s *session) error {
				records, err := attendance.NewService(s.store, location.Fixed(nil), nil).GetHistory(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(records) == 0 {
					_, _ = fmt.Fprintln(out, "no records")
					return nil
				}
				if limit > 0 && len(records) > limit {
					records = records[:limit]
				}
				for _, r := range records {
					_, _ = fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", r.Timestamp, r.Type, r.Coordinates, r.Method)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "show at most this many records")
	return cmd
}

func newOfficeCmd(open opener) *cobra.Command {
	officeCmd := &cobra.Command{Use: "office", Short: "Office location commands"}

	officeCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the configured office",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(open, func(s *session) error {
				o, err := office.NewService(s.store, s.cfg.DefaultRadius).Get(cmd.Context())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "name: %s\naddress: %s\nlocation: %s\nradius: %sm\n",
					o.Name, o.Address, o.Coordinates, strconv.FormatFloat(o.Radius, 'f', -1, 64))
				return nil
			})
		},
	})

	var (
		req      office.SaveOfficeRequest
		lat, lng float64
	)
	set := &cobra.Command{
		Use:   "set --name <name> --lat <lat> --lng <lng>",
		Short: "Replace the office location",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("lat") {
				req.Latitude = &lat
			}
			if cmd.Flags().Changed("lng") {
				req.Longitude = &lng
			}
			return withSession(open, func(s *session) error {
				o, err := office.NewService(s.store, s.cfg.DefaultRadius).Save(cmd.Context(), req)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "office saved: %s at %s\n", o.Name, o.Coordinates)
				return nil
			})
		},
	}
	set.Flags().StringVar(&req.Name, "name", "", "office name")
	set.Flags().StringVar(&req.Address, "address", "", "street address")
	set.Flags().Float64Var(&lat, "lat", 0, "office latitude")
	set.Flags().Float64Var(&lng, "lng", 0, "office longitude")
	set.Flags().Float64Var(&req.Radius, "radius", 0, "geofence radius in meters (default from config)")
	officeCmd.AddCommand(set)

	return officeCmd
}

func newCheckCmd(open opener, use, short string) *cobra.Command {
	var pos positionFlags
	cmd := &cobra.Command{
		Use:   use + " --lat <lat> --lng <lng>",
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loc, err := pos.location(cmd)
			if err != nil {
				return err
			}
			return withSession(open, func(s *session) error {
				svc := attendance.NewService(s.store, location.Fixed(loc), nil)

				var rec attendance.RecordResponse
				if use == "check-in" {
					rec, err = svc.CheckIn(cmd.Context())
				} else {
					rec, err = svc.CheckOut(cmd.Context())
				}
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s recorded at %s (%s)\n", rec.Type, rec.Timestamp, rec.Coordinates)
				return nil
			})
		},
	}
	pos.bind(cmd)
	return cmd
}

func newDistanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <lat1> <lng1> <lat2> <lng2>",
		Short: "Great-circle distance between two points",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals := make([]float64, len(args))
			for i, a := range args {
				v, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("invalid coordinate %q", a)
				}
				vals[i] = v
			}
			d := geo.Distance(
				geo.Location{Latitude: vals[0], Longitude: vals[1]},
				geo.Location{Latitude: vals[2], Longitude: vals[3]},
			)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%.2f m)\n", geo.FormatDistance(d), d)
			return nil
		},
	}
}

func newResetCmd(open opener) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset --yes",
		Short: "Delete the office and all attendance records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to reset without --yes")
			}
			return withSession(open, func(s *session) error {
				if err := s.store.Reset(cmd.Context()); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "state cleared")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}

// newWatchCmd reads "lat,lng" lines from stdin as a location watch and
// prints the geofence result for every fix.
func newWatchCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: `Evaluate the geofence for "lat,lng" lines read from stdin`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(open, func(s *session) error {
				st, err := s.store.Load(cmd.Context())
				if err != nil {
					return err
				}
				fence := attendance.OfficeFence(st.Office)
				out := cmd.OutOrStdout()

				ctx, cancel := context.WithCancel(cmd.Context())
				defer cancel()

				fixes := make(chan geo.Location)
				scanErr := make(chan error, 1)
				go func() {
					defer close(fixes)
					scanErr <- scanFixes(ctx, cmd.InOrStdin(), fixes)
				}()

				tracker := location.NewTracker(zap.L())
				last := geofence.Unknown
				err = tracker.Feed(ctx, fixes, func(loc geo.Location) {
					res := geofence.Evaluate(&loc, fence)
					distance := "--"
					if res.Distance != nil {
						distance = geo.FormatDistance(*res.Distance)
					}
					line := fmt.Sprintf("%s\t%s\t%s", loc, res.Status, distance)
					if res.Status != last && last != geofence.Unknown {
						line += fmt.Sprintf("\t(%s -> %s)", last, res.Status)
					}
					last = res.Status
					_, _ = fmt.Fprintln(out, line)
				})
				if err != nil {
					return err
				}
				return <-scanErr
			})
		},
	}
}

func scanFixes(ctx context.Context, r io.Reader, fixes chan<- geo.Location) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		loc, err := parseFix(text)
		if err != nil {
			return err
		}
		select {
		case fixes <- loc:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return scanner.Err()
}

func parseFix(text string) (geo.Location, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return geo.Location{}, fmt.Errorf("invalid fix %q, want \"lat,lng\"", text)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geo.Location{}, fmt.Errorf("invalid latitude in %q", text)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geo.Location{}, fmt.Errorf("invalid longitude in %q", text)
	}
	return geo.Location{Latitude: lat, Longitude: lng}, nil
}
