package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ekarlsen/seatlock/client"
	"github.com/ekarlsen/seatlock/types"
)

// Load generator for the admit path: fires concurrent admissions with
// distinct identities against one (resource, role) pair and reports how
// the capacity bound held up.
func main() {
	var (
		endpoint = flag.String("endpoint", "localhost:50051", "server address")
		resource = flag.String("resource", "bench-event", "resource identifier")
		role     = flag.String("role", "bench-role", "role identifier")
		attempts = flag.Int("n", 100, "total admission attempts")
		workers  = flag.Int("c", 10, "concurrent workers")
	)
	flag.Parse()

	config := client.DefaultClientConfig()
	config.Endpoint = *endpoint
	c, err := client.New(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = c.Close() }()

	var (
		created  atomic.Int64
		dupes    atomic.Int64
		rejected atomic.Int64
		failed   atomic.Int64
	)

	jobs := make(chan int)
	var wg sync.WaitGroup
	start := time.Now()

	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				identity := types.Identity{
					Kind:  types.KindGuest,
					Email: fmt.Sprintf("bench-%d@example.com", i),
				}
				result, err := c.Admit(context.Background(), types.ResourceID(*resource), types.RoleID(*role), identity)
				switch {
				case err == nil && result.Status == types.StatusCreated:
					created.Add(1)
				case err == nil:
					dupes.Add(1)
				case errors.Is(err, client.ErrCapacityExceeded):
					rejected.Add(1)
				default:
					failed.Add(1)
					fmt.Fprintf(os.Stderr, "attempt %d: %v\n", i, err)
				}
			}
		}()
	}

	for i := 0; i < *attempts; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	elapsed := time.Since(start)

	occ, err := c.GetOccupancy(context.Background(), types.ResourceID(*resource), types.RoleID(*role))
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading final occupancy: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("attempts:   %d in %s (%.1f/s)\n", *attempts, elapsed.Round(time.Millisecond), float64(*attempts)/elapsed.Seconds())
	fmt.Printf("created:    %d\n", created.Load())
	fmt.Printf("duplicate:  %d\n", dupes.Load())
	fmt.Printf("rejected:   %d\n", rejected.Load())
	fmt.Printf("failed:     %d\n", failed.Load())
	if occ.Capacity != nil {
		fmt.Printf("final:      %d/%d\n", occ.Total, *occ.Capacity)
		if occ.Total > *occ.Capacity {
			fmt.Println("CAPACITY BOUND VIOLATED")
			os.Exit(1)
		}
	} else {
		fmt.Printf("final:      %d (unbounded)\n", occ.Total)
	}
}
