package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed products.json
var productsJSON []byte

// Product is one catalog record. Fields are free-form key/value pairs; every
// record carries a unique "SKU" key.
type Product map[string]any

// SKU returns the record's unique identifier, or "" when absent.
func (p Product) SKU() string {
	v, _ := p["SKU"].(string)
	return v
}

var _ CatalogModel = (*defaultCatalogModel)(nil)

type (
	// CatalogModel is the read-only catalog collaborator. The backing data is
	// embedded at build time and never changes for the process lifetime.
	CatalogModel interface {
		ProductsByCategory(name string) []Product
		Categories() []string
		ProductKeys() []string
	}

	defaultCatalogModel struct {
		bySKU      map[string]Product
		categories []string
		keys       []string
	}
)

// MustNewCatalogModel builds the catalog from the embedded data and panics on
// a malformed build. Called once at bootstrap.
func MustNewCatalogModel() CatalogModel {
	m, err := NewCatalogModel()
	if err != nil {
		panic(err)
	}
	return m
}

func NewCatalogModel() (CatalogModel, error) {
	var products []Product
	if err := json.Unmarshal(productsJSON, &products); err != nil {
		return nil, fmt.Errorf("decode embedded catalog: %w", err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("embedded catalog is empty")
	}

	bySKU := make(map[string]Product, len(products))
	for _, p := range products {
		sku := p.SKU()
		if sku == "" {
			return nil, fmt.Errorf("catalog record without SKU: %v", p)
		}
		bySKU[sku] = p
	}

	keys, err := firstRecordKeys(productsJSON)
	if err != nil {
		return nil, fmt.Errorf("extract product keys: %w", err)
	}

	categories := make([]string, 0, len(categoryMap))
	for _, entry := range categoryMap {
		categories = append(categories, entry.name)
		for _, sku := range entry.skus {
			if _, ok := bySKU[sku]; !ok {
				return nil, fmt.Errorf("category %q references unknown SKU %q", entry.name, sku)
			}
		}
	}

	return &defaultCatalogModel{
		bySKU:      bySKU,
		categories: categories,
		keys:       keys,
	}, nil
}

// ProductsByCategory returns the category's records in map order. An unknown
// category yields an empty slice, never an error.
func (m *defaultCatalogModel) ProductsByCategory(name string) []Product {
	for _, entry := range categoryMap {
		if entry.name != name {
			continue
		}
		products := make([]Product, 0, len(entry.skus))
		for _, sku := range entry.skus {
			if p, ok := m.bySKU[sku]; ok {
				products = append(products, p)
			}
		}
		return products
	}
	return []Product{}
}

func (m *defaultCatalogModel) Categories() []string {
	out := make([]string, len(m.categories))
	copy(out, m.categories)
	return out
}

// ProductKeys returns the field names of a catalog record in declaration
// order, used to compose the initial instruction prompt.
func (m *defaultCatalogModel) ProductKeys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// firstRecordKeys walks the JSON tokens of the first array element so key
// order survives decoding (a plain map would shuffle it).
func firstRecordKeys(raw []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil { // opening '['
		return nil, err
	}
	if _, err := dec.Token(); err != nil { // opening '{'
		return nil, err
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in catalog record", tok)
		}
		keys = append(keys, key)

		// skip the value
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
	}
	return keys, nil
}
