package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ekarlsen/seatlock/client"
	"github.com/ekarlsen/seatlock/types"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: seatlock-client [flags] <command>

Commands:
  admit        request admission (requires -resource, -role, and an identity)
  occupancy    print current occupancy (requires -resource, -role)
  claim        attempt a one-shot claim (requires -flag)
  health       check server health

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	var (
		endpoint = flag.String("endpoint", "localhost:50051", "server address")
		resource = flag.String("resource", "", "resource identifier")
		role     = flag.String("role", "", "role identifier")
		memberID = flag.String("member", "", "member identifier (member identity)")
		email    = flag.String("email", "", "guest email (guest identity)")
		phone    = flag.String("phone", "", "guest phone (guest identity)")
		flagID   = flag.String("flag", "", "one-shot flag identifier")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	config := client.DefaultClientConfig()
	config.Endpoint = *endpoint
	c, err := client.New(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = c.Close() }()

	ctx := context.Background()

	switch flag.Arg(0) {
	case "admit":
		identity := types.Identity{Kind: types.KindMember, MemberID: *memberID}
		if *memberID == "" {
			identity = types.Identity{Kind: types.KindGuest, Email: *email, Phone: *phone}
		}
		result, err := c.Admit(ctx, types.ResourceID(*resource), types.RoleID(*role), identity)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s: %s\n", result.Status, formatOccupancy(result.After))

	case "occupancy":
		occ, err := c.GetOccupancy(ctx, types.ResourceID(*resource), types.RoleID(*role))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(formatOccupancy(occ))

	case "claim":
		claimed, err := c.ClaimOnce(ctx, types.FlagID(*flagID))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if claimed {
			fmt.Println("claimed")
		} else {
			fmt.Println("already claimed")
		}

	case "health":
		healthy, err := c.Health(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("healthy: %v\n", healthy)

	default:
		usage()
		os.Exit(2)
	}
}

func formatOccupancy(occ types.Occupancy) string {
	if occ.Capacity != nil {
		return fmt.Sprintf("%d/%d taken (%d committed, %d guests)", occ.Total, *occ.Capacity, occ.Committed, occ.Guests)
	}
	return fmt.Sprintf("%d taken, unbounded (%d committed, %d guests)", occ.Total, occ.Committed, occ.Guests)
}
