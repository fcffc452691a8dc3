// Command loadtest drives a running "alarmclock serve" instance with concurrent
// API traffic and prints per-endpoint latency percentiles.
package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/pflag"
)

var (
	baseURL    = pflag.String("url", "http://127.0.0.1:8089", "alarmclock serve address")
	numWorkers = pflag.Int("workers", 20, "concurrent workers")
	phaseTime  = pflag.Duration("duration", 5*time.Second, "duration of each phase")
	maxIndex   = pflag.Int("max-index", 200, "upper bound for random toggle indexes")
)

var tones = []string{"Default", "Chimes", "Radar", "Beacon"}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func main() {
	pflag.Parse()

	fmt.Println("=== alarmclock load test ===")
	fmt.Printf("Target: %s | Workers: %d | Phase: %s\n\n", *baseURL, *numWorkers, *phaseTime)

	fmt.Print("Waiting for server... ")
	if !waitForServer() {
		fmt.Println("FAILED: server not responding")
		os.Exit(1)
	}
	fmt.Println("OK")

	fmt.Println("\n--- Phase 1: Seeding alarms (POST /alarms/add) ---")
	runPhase(*phaseTime, func(rng *rand.Rand) result {
		return doAdd(rng)
	})

	fmt.Println("\n--- Phase 2: Mixed load (toggle, snooze, list) ---")
	runPhase(*phaseTime, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.30:
			return doToggle(rng)
		case r < 0.45:
			return doSnooze(rng)
		case r < 0.55:
			return doAdd(rng)
		default:
			return doGet("/alarms")
		}
	})

	fmt.Println("\n--- Phase 3: Read-heavy load (cached list + health) ---")
	runPhase(*phaseTime, func(rng *rand.Rand) result {
		if rng.Float64() < 0.85 {
			return doGet("/alarms")
		}
		return doGet("/health")
	})

	fmt.Println("\n--- Phase 4: Cleanup (POST /alarms/dismiss) ---")
	runPhase(*phaseTime, func(rng *rand.Rand) result {
		return doDismiss(rng)
	})
}

func waitForServer() bool {
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(*baseURL + "/health")
		if err == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return true
		}
		time.Sleep(200 * time.Millisecond)
	}
	return false
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < *numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					results <- workFn(rng)
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps, totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-22s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + strings.Repeat("-", 88))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		fmt.Printf("  %-22s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors,
			fmtDur(avgDuration(s.latencies)),
			fmtDur(percentile(s.latencies, 0.50)),
			fmtDur(percentile(s.latencies, 0.95)),
			fmtDur(percentile(s.latencies, 0.99)))
	}

	if totalOps == 0 {
		fmt.Println("  no requests completed")
		return
	}
	fmt.Println("  " + strings.Repeat("-", 88))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, float64(totalOps)/duration.Seconds())
}

func randomClock(rng *rand.Rand) string {
	return fmt.Sprintf("%02d:%02d", rng.Intn(24), rng.Intn(60))
}

// do sends one request; ok lists the statuses that do not count as errors.
func do(endpoint, method, path string, body any, ok ...int) result {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, *baseURL+path, reader)
	if err != nil {
		return result{endpoint: endpoint, err: true}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := httpClient.Do(req)
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	failed := true
	for _, code := range ok {
		if resp.StatusCode == code {
			failed = false
		}
	}
	return result{endpoint, resp.StatusCode, lat, failed}
}

func doAdd(rng *rand.Rand) result {
	body := map[string]string{
		"time": randomClock(rng),
		"tone": tones[rng.Intn(len(tones))],
	}
	return do("POST /alarms/add", http.MethodPost, "/alarms/add", body, http.StatusCreated)
}

// Indexes may fall outside the list while other workers delete, so 400 is expected.
func doToggle(rng *rand.Rand) result {
	path := fmt.Sprintf("/alarms/toggle?index=%d", rng.Intn(*maxIndex))
	return do("POST /alarms/toggle", http.MethodPost, path, nil, http.StatusOK, http.StatusBadRequest)
}

func doSnooze(rng *rand.Rand) result {
	body := map[string]string{"time": randomClock(rng)}
	return do("POST /alarms/snooze", http.MethodPost, "/alarms/snooze", body, http.StatusOK, http.StatusNotFound)
}

func doDismiss(rng *rand.Rand) result {
	body := map[string]string{"time": randomClock(rng)}
	return do("POST /alarms/dismiss", http.MethodPost, "/alarms/dismiss", body, http.StatusOK, http.StatusNotFound)
}

func doGet(path string) result {
	return do("GET "+path, http.MethodGet, path, nil, http.StatusOK)
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dus", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
