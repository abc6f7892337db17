package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Синтетический клиент панели: опрашивает публичные ручки, чтобы на
// дашбордах Grafana были данные без живых менеджеров.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_generator_requests_total",
		Help: "Requests sent to the admin panel",
	}, []string{"path", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "traffic_generator_request_duration_seconds",
		Help:    "Admin panel response time seen by the generator",
		Buckets: []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1, 2},
	}, []string{"path"})
)

type target struct {
	method string
	path   string
}

var targets = []target{
	{method: http.MethodGet, path: "/ping"},
	{method: http.MethodGet, path: "/connectivity"},
	{method: http.MethodGet, path: "/session"},
	{method: http.MethodHead, path: "/healthcheck"},
}

func send(ctx context.Context, client *http.Client, baseURL string, t target) {
	req, err := http.NewRequestWithContext(ctx, t.method, baseURL+t.path, http.NoBody)
	if err != nil {
		log.Printf("build request %s: %v", t.path, err)
		return
	}
	req.Header.Set("X-Device-ID", "traffic-generator")

	start := time.Now()
	resp, err := client.Do(req)
	requestDuration.WithLabelValues(t.path).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(t.path, "error").Inc()
		return
	}
	_ = resp.Body.Close()
	requestsTotal.WithLabelValues(t.path, strconv.Itoa(resp.StatusCode)).Inc()
}

func main() {
	baseURL := flag.String("target", "http://localhost:8080", "Admin panel base URL")
	interval := flag.Duration("interval", time.Second, "Pause between requests")
	metricsAddr := flag.String("metrics", ":2112", "Metrics listen address")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		//nolint:gosec // локальный генератор
		if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
			log.Printf("metrics server: %v", err)
			os.Exit(1)
		}
	}()

	client := &http.Client{Timeout: 5 * time.Second}
	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			send(ctx, client, *baseURL, targets[rand.Intn(len(targets))]) //nolint:gosec // не криптография
		}
	}
}
