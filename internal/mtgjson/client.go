package mtgjson

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/openmtg/cardscribe/internal/progress"
)

// DefaultBaseURL is the MTGJSON v5 API root. The tool offers no way to
// point at a different server.
const DefaultBaseURL = "https://mtgjson.com/api/v5"

// fetchChunkSize is how many bytes each read pulls off the wire.
const fetchChunkSize = 1024

// KnownDatasets lists the atomic datasets cardscribe knows how to fetch.
var KnownDatasets = []string{
	"AtomicCards",
	"LegacyAtomic",
	"ModernAtomic",
	"PauperAtomic",
	"PioneerAtomic",
	"StandardAtomic",
	"VintageAtomic",
}

// IsKnownDataset reports whether name is one of KnownDatasets.
func IsKnownDataset(name string) bool {
	for _, known := range KnownDatasets {
		if name == known {
			return true
		}
	}
	return false
}

// Client downloads atomic datasets from the MTGJSON API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client for the MTGJSON API. The underlying HTTP
// client carries no timeout, so a run blocks for as long as the
// download does.
func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{},
	}
}

// DatasetURL returns the URL the named dataset is fetched from.
func (c *Client) DatasetURL(name string) string {
	return fmt.Sprintf("%s/%s.json", c.BaseURL, name)
}

// FetchDataset downloads the named dataset and parses its "data"
// object. The body is read in fixed-size chunks so the meter can track
// download progress; the meter's total comes from Content-Length when
// the server provides one, and stays indeterminate otherwise.
func (c *Client) FetchDataset(name string, meter *progress.Meter) (*Dataset, error) {
	url := c.DatasetURL(name)

	resp, err := c.HTTPClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("error fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("error fetching %s: HTTP %d", url, resp.StatusCode)
	}

	if meter != nil && resp.ContentLength > 0 {
		meter.SetTotal(resp.ContentLength)
	}

	var buf bytes.Buffer
	chunk := make([]byte, fetchChunkSize)
	for {
		n, err := resp.Body.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
			if meter != nil {
				meter.Add(n)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading response from %s: %v", url, err)
		}
	}
	if meter != nil {
		meter.Finish()
	}

	return ParseDataset(&buf)
}
