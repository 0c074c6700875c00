// seqsleuth: a tool for predicting sequencing technology and extracting
// metadata from genomic sequencing files.
// Copyright (c) 2023-2026 N.D. Olson.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License along with this program. If not, see
// <https://github.com/nate-d-olson/SeqSleuth/blob/master/LICENSE.txt>.

package internal

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	// DefaultRetries is the number of times a failed remote fetch is
	// retried before the file counts as unreadable.
	DefaultRetries = 2

	// DefaultTimeout bounds a single remote fetch, including reading
	// the sampled portion of the response body.
	DefaultTimeout = 10 * time.Minute
)

// Open opens the source named by rawurl for reading. Plain paths and
// file:// URLs open a local file; http:// and https:// URLs are fetched
// with the given timeout, retrying failed requests. All failures are
// reported as UnreadableFile errors.
func Open(rawurl string, timeout time.Duration, retries int) (io.ReadCloser, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return nil, Unreadable(err, rawurl)
	}
	switch u.Scheme {
	case "http", "https":
		return openRemote(rawurl, timeout, retries)
	case "", "file":
		path := rawurl
		if u.Scheme == "file" {
			path = u.Path
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, Unreadable(err, rawurl)
		}
		return f, nil
	default:
		return nil, Unreadable(fmt.Errorf("unsupported scheme %v", u.Scheme), rawurl)
	}
}

func openRemote(rawurl string, timeout time.Duration, retries int) (io.ReadCloser, error) {
	client := retryablehttp.NewClient()
	client.Logger = nil
	if retries < 0 {
		retries = DefaultRetries
	}
	client.RetryMax = retries
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client.HTTPClient.Timeout = timeout
	resp, err := client.Get(rawurl)
	if err != nil {
		return nil, Unreadable(err, rawurl)
	}
	if resp.StatusCode != 200 {
		_ = resp.Body.Close()
		return nil, Unreadable(fmt.Errorf("unexpected status %v", strings.TrimSpace(resp.Status)), rawurl)
	}
	return resp.Body, nil
}
