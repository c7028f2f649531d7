package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/polkiloo/foodstall/internal/domain/model"
)

// DefaultPaymentMethods lists the methods accepted at the counter.
var DefaultPaymentMethods = []string{"Tunai", "DuitNow QR Pay", "TnG Online Transfer"}

// Catalog is an immutable name to price mapping.
type Catalog struct {
	items          []model.MenuItem
	index          map[string]model.MenuItem
	paymentMethods []string
}

// New builds a catalog. Names must be unique and prices non-negative cent
// amounts the order store can hold without rounding.
func New(items []model.MenuItem, paymentMethods []string) (*Catalog, error) {
	c := &Catalog{
		items: make([]model.MenuItem, 0, len(items)),
		index: make(map[string]model.MenuItem, len(items)),
	}
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("menu item without name")
		}
		if item.Price.IsNegative() {
			return nil, fmt.Errorf("menu item %q has negative price", name)
		}
		if !model.ValidAmount(item.Price) {
			return nil, fmt.Errorf("menu item %q: price %s needs at most two decimals and at most %s", name, item.Price, model.MaxAmount)
		}
		if _, dup := c.index[name]; dup {
			return nil, fmt.Errorf("menu item %q declared twice", name)
		}
		item.Name = name
		c.items = append(c.items, item)
		c.index[name] = item
	}
	if len(paymentMethods) == 0 {
		paymentMethods = DefaultPaymentMethods
	}
	c.paymentMethods = append([]string(nil), paymentMethods...)
	return c, nil
}

// Default returns the stall's standard menu.
func Default() *Catalog {
	p := decimal.RequireFromString
	c, _ := New([]model.MenuItem{
		{Name: "Lamb Chop", Price: p("17.00"), Category: model.MenuCategoryFood},
		{Name: "Chicken Chop", Price: p("6.00"), Category: model.MenuCategoryFood},
		{Name: "Chicken Grilled", Price: p("12.00"), Category: model.MenuCategoryFood},
		{Name: "Spaghetti Bolognese", Price: p("6.00"), Category: model.MenuCategoryFood},
		{Name: "Spaghetti Carbonara", Price: p("6.00"), Category: model.MenuCategoryFood},
		{Name: "Fries", Price: p("4.00"), Category: model.MenuCategoryFood},
		{Name: "Fish N Chip", Price: p("7.00"), Category: model.MenuCategoryFood},
		{Name: "Teh O Ais", Price: p("3.00"), Category: model.MenuCategoryDrink},
		{Name: "Sirap Limau", Price: p("3.50"), Category: model.MenuCategoryDrink},
		{Name: "Kopi Panas", Price: p("2.50"), Category: model.MenuCategoryDrink},
		{Name: "Jus Oren", Price: p("4.00"), Category: model.MenuCategoryDrink},
	}, nil)
	return c
}

type fileItem struct {
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
}

type fileMenu struct {
	Categories     map[string][]fileItem `yaml:"categories"`
	PaymentMethods []string              `yaml:"payment_methods"`
}

// Parse decodes a YAML menu document.
func Parse(data []byte) (*Catalog, error) {
	var doc fileMenu
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}

	categories := make([]string, 0, len(doc.Categories))
	for name := range doc.Categories {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	var items []model.MenuItem
	for _, category := range categories {
		for _, entry := range doc.Categories[category] {
			price, err := decimal.NewFromString(strings.TrimSpace(entry.Price))
			if err != nil {
				return nil, fmt.Errorf("menu item %q: price: %w", entry.Name, err)
			}
			items = append(items, model.MenuItem{
				Name:     entry.Name,
				Price:    price,
				Category: model.MenuCategory(category),
			})
		}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("menu is empty")
	}
	return New(items, doc.PaymentMethods)
}

// Load reads the menu from path, or returns Default when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu: %w", err)
	}
	return Parse(data)
}

// Lookup returns the current price of name.
func (c *Catalog) Lookup(name string) (decimal.Decimal, bool) {
	item, ok := c.index[name]
	if !ok {
		return decimal.Zero, false
	}
	return item.Price, true
}

// Items returns menu entries in declaration order.
func (c *Catalog) Items() []model.MenuItem {
	out := make([]model.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// PaymentMethods returns the accepted payment methods.
func (c *Catalog) PaymentMethods() []string {
	return append([]string(nil), c.paymentMethods...)
}
