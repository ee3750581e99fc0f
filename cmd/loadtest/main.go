package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

var (
	targetHost  = flag.String("host", "http://localhost:8080", "адрес сервиса")
	org         = flag.String("org", "acme", "slug организации")
	project     = flag.String("project", "1", "id проекта для фасетов")
	activityIDs = flag.String("activities", "1,2,3", "id активностей через запятую")
	actorID     = flag.String("actor", "1", "X-Actor-Id для фасетов")
	rps         = flag.Int("rps", 20, "запросов в секунду")
	duration    = flag.Duration("duration", time.Minute, "длительность атаки")
)

var (
	facetQueries = []string{"", "transaction:/api/*", "event.type:transaction", "has:browser.name"}
	userAgents   = [][]string{{"okhttp"}, {"CFNetwork", "Dalvik"}, {"Darwin"}}
	orders       = []string{"-sumdelta", "-frequency", "-count"}
)

// Targeter
func makeTargeter(activities []string) vegeta.Targeter {
	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.Body = nil
		t.Header = http.Header{"Accept": {"application/json"}}

		r := rand.Float64()

		// 60% facets performance
		if r < 0.60 {
			q := url.Values{}
			q.Set("project", *project)
			q.Set("statsPeriod", "24h")
			q.Set("order", orders[rand.Intn(len(orders))])
			if fq := facetQueries[rand.Intn(len(facetQueries))]; fq != "" {
				q.Set("query", fq)
			}
			if rand.Intn(3) == 0 {
				q.Set("cursor", fmt.Sprintf("0:%d:0", 5*rand.Intn(4)))
			}
			t.URL = fmt.Sprintf("%s/organizations/%s/events-facets-performance?%s", *targetHost, *org, q.Encode())
			t.Header.Set("X-Actor-Id", *actorID)
			return nil
		}

		// 30% mobile app events, в основном из кэша
		if r < 0.90 {
			q := url.Values{}
			for _, ua := range userAgents[rand.Intn(len(userAgents))] {
				q.Add("userAgents", ua)
			}
			t.URL = fmt.Sprintf("%s/organizations/%s/has-mobile-app-events?%s", *targetHost, *org, q.Encode())
			return nil
		}

		// 10% notification context
		activity := activities[rand.Intn(len(activities))]
		t.URL = fmt.Sprintf("%s/organizations/%s/activities/%s/notification", *targetHost, *org, activity)
		return nil
	}
}

// Attack
func runAttack(activities []string) {
	rate := vegeta.Rate{Freq: *rps, Per: time.Second}
	attacker := vegeta.NewAttacker(vegeta.Timeout(30 * time.Second))
	targeter := makeTargeter(activities)

	var metrics vegeta.Metrics
	statuses := map[int]int{}

	log.Printf("Starting attack: %s for %s at %d rps", *targetHost, *duration, *rps)
	for res := range attacker.Attack(targeter, rate, *duration, "event-insights") {
		metrics.Add(res)
		statuses[int(res.Code)]++
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
	for code, n := range statuses {
		fmt.Printf("Status %d: %d\n", code, n)
	}
}

func main() {
	flag.Parse()

	var activities []string
	for _, id := range strings.Split(*activityIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			activities = append(activities, id)
		}
	}
	if len(activities) == 0 {
		log.Fatal("at least one activity id is required")
	}

	runAttack(activities)
}
