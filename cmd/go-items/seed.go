package main

import (
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/adfharrison1/go-items/pkg/client"
	"github.com/adfharrison1/go-items/pkg/domain"
)

var (
	seedCount       int
	seedURL         string
	seedConcurrency int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert random items into a running server",
	Long:  "Insert --count randomly named items through the HTTP API and report throughput.",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().IntVarP(&seedCount, "count", "n", 100, "number of items to insert")
	seedCmd.Flags().StringVar(&seedURL, "url", "http://localhost:5000", "server base URL")
	seedCmd.Flags().IntVar(&seedConcurrency, "concurrency", 4, "parallel requests")
}

// randomName returns a capitalised 6-letter name
func randomName(r *rand.Rand) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	name := make([]byte, 6)
	for i := range name {
		name[i] = letters[r.IntN(len(letters))]
	}
	name[0] -= 'a' - 'A'
	return string(name)
}

func randomItem(r *rand.Rand) domain.Item {
	name := randomName(r)
	return domain.Item{
		Name:        name,
		Description: fmt.Sprintf("%s seeded item %d", name, r.IntN(1000)),
		Active:      r.IntN(2) == 0,
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	if seedCount <= 0 {
		return fmt.Errorf("--count must be greater than 0")
	}
	if seedConcurrency <= 0 {
		return fmt.Errorf("--concurrency must be greater than 0")
	}

	out := cmd.OutOrStdout()
	c := client.New(seedURL)
	r := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

	items := make([]domain.Item, seedCount)
	for i := range items {
		items[i] = randomItem(r)
	}

	fmt.Fprintf(out, "Inserting %d items into %s\n", seedCount, seedURL)
	start := time.Now()
	var succeeded, failed atomic.Int64

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(seedConcurrency)
	for _, item := range items {
		g.Go(func() error {
			if _, err := c.Add(ctx, item); err != nil {
				failed.Add(1)
				fmt.Fprintf(cmd.ErrOrStderr(), "Error inserting %s: %v\n", item.Name, err)
				return nil
			}
			succeeded.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	elapsed := time.Since(start)
	fmt.Fprintf(out, "Inserted %d items (%d errors) in %v", succeeded.Load(), failed.Load(), elapsed.Round(time.Millisecond))
	if secs := elapsed.Seconds(); secs > 0 {
		fmt.Fprintf(out, " - %.1f items/sec", float64(succeeded.Load())/secs)
	}
	fmt.Fprintln(out)

	if failed.Load() > 0 {
		return fmt.Errorf("%d of %d inserts failed", failed.Load(), seedCount)
	}
	return nil
}
