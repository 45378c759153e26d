// Command initdata seeds a running notes-api with fake notes through the
// public HTTP API.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

var (
	baseURL = flag.String("url", env("API_BASE_URL", "http://localhost:8080"), "Server base URL")
	nNotes  = flag.Int("n", envInt("COUNT", 500), "How many notes to create")
	seed    = flag.Int64("seed", 0, "Faker seed (0 = time based)")
)

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return def
}

func postJSON(client *http.Client, url string, body any) (*http.Response, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return client.Do(req)
}

func readAll(body io.ReadCloser) []byte {
	defer body.Close()
	data, _ := io.ReadAll(body)
	return data
}

func main() {
	flag.Parse()

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	faker := gofakeit.New(s)

	fmt.Printf("Seeding %d notes on %s\n", *nNotes, *baseURL)

	client := &http.Client{Timeout: 5 * time.Second}
	if err := createNotes(client, faker, *baseURL, *nNotes, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "FATAL:", err)
		os.Exit(1)
	}

	fmt.Println("done")
}

// fakeDescription builds a short note text
func fakeDescription(f *gofakeit.Faker) string {
	switch f.Number(0, 2) {
	case 0:
		return f.Sentence(6)
	case 1:
		return fmt.Sprintf("Buy %s at %s", f.Fruit(), f.Company())
	default:
		return f.Paragraph(1, 2, 12, " ")
	}
}

// createNotes posts total notes and reports progress to out every 50 notes
func createNotes(client *http.Client, f *gofakeit.Faker, base string, total int, out io.Writer) error {
	for i := 1; i <= total; i++ {
		note := map[string]string{"description": fakeDescription(f)}

		resp, err := postJSON(client, base+"/notes", note)
		if err != nil {
			return err
		}
		if resp.StatusCode != http.StatusCreated {
			return fmt.Errorf("create note %d failed (%d): %s", i, resp.StatusCode, readAll(resp.Body))
		}
		_ = readAll(resp.Body)

		if i%50 == 0 || i == total {
			fmt.Fprintf(out, "  %d/%d\n", i, total)
		}
	}
	return nil
}
