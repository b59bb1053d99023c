//go:build ignore

package main

// Ручная проверка конвейера на запущенном сервисе: создает точку
// назначения, синхронно загружает период rush и печатает легенду
// готовой тепловой карты.
//
//	go run scripts/smoke.go -addr http://localhost:8080

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "base URL of a running commute-heatmap instance")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Minute}

	// Проверка живости
	resp, err := client.Get(*addr + "/api/v1/health")
	if err != nil {
		log.Fatalf("Service is not reachable: %v", err)
	}
	resp.Body.Close()
	fmt.Println("✅ Service is up")

	// Создание точки назначения
	body, _ := json.Marshal(map[string]interface{}{
		"name":          "Smoke Office",
		"address":       "425 Market St, San Francisco, CA",
		"rush_trips":    8,
		"offpeak_trips": 2,
	})
	resp, err = client.Post(*addr+"/api/v1/destinations", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("Failed to create destination: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("Unexpected status creating destination: %s", resp.Status)
	}
	fmt.Println("✅ Destination created")

	// Синхронная загрузка: запрос держится открытым до конца выборки
	fmt.Println("⏳ Fetching rush travel times, this can take minutes...")
	start := time.Now()
	body, _ = json.Marshal(map[string]string{"period": "rush"})
	resp, err = client.Post(*addr+"/api/v1/fetch", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("Fetch failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("Unexpected fetch status: %s", resp.Status)
	}
	fmt.Printf("✅ Fetch finished in %s\n", time.Since(start).Round(time.Second))

	// Тепловая карта по свежей выборке
	resp, err = client.Get(*addr + "/api/v1/heatmap?period=rush")
	if err != nil {
		log.Fatalf("Heatmap request failed: %v", err)
	}
	defer resp.Body.Close()

	var envelope struct {
		Data struct {
			Total  int `json:"total"`
			Legend *struct {
				MinMinutes  int `json:"min_minutes"`
				MaxMinutes  int `json:"max_minutes"`
				MeanMinutes int `json:"mean_minutes"`
			} `json:"legend"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		log.Fatalf("Failed to decode heatmap response: %v", err)
	}

	fmt.Printf("✅ Heatmap ready: %d markers\n", envelope.Data.Total)
	if envelope.Data.Legend != nil {
		fmt.Printf("   Minutes: min %d, mean %d, max %d\n",
			envelope.Data.Legend.MinMinutes,
			envelope.Data.Legend.MeanMinutes,
			envelope.Data.Legend.MaxMinutes)
	}
}
