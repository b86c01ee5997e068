// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scrape

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// RawItem holds the untrimmed fields pulled from one article container.
// All fields may be empty; validation happens during normalization.
type RawItem struct {
	Headline    string
	Description string
	Link        string
	Image       string
}

// Extract parses html and pulls up to limit raw items using the given
// selectors. Missing fields within a container yield empty strings rather
// than errors. A parse failure of the document itself is returned.
func Extract(html string, sel Selectors, limit int) ([]RawItem, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	var items []RawItem
	doc.Find(sel.Container).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if limit > 0 && len(items) >= limit {
			return false
		}
		items = append(items, extractItem(s, sel))
		return true
	})

	return items, nil
}

func extractItem(s *goquery.Selection, sel Selectors) RawItem {
	item := RawItem{
		Headline:    s.Find(sel.Headline).First().Text(),
		Description: s.Find(sel.Description).First().Text(),
	}

	if href, ok := s.Find(sel.Link).First().Attr("href"); ok {
		item.Link = href
	}

	img := s.Find(sel.Image).First()
	if src, ok := img.Attr("src"); ok && src != "" {
		item.Image = src
	} else if src, ok := img.Attr("data-src"); ok {
		// Lazy-loaded images keep the real URL in data-src.
		item.Image = src
	}

	return item
}
