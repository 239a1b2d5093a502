// Package seed loads the sample catalog and orders into a fresh database
// through the same command handlers the API uses.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"log/slog"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Catalog struct {
	MenuItems []MenuItemFixture `yaml:"menuItems"`
	Orders    []OrderFixture    `yaml:"orders"`
}

type MenuItemFixture struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Category        string   `yaml:"category"`
	Price           float64  `yaml:"price"`
	Ingredients     []string `yaml:"ingredients"`
	IsAvailable     bool     `yaml:"isAvailable"`
	PreparationTime int      `yaml:"preparationTime"`
	ImageURL        string   `yaml:"imageUrl"`
}

// OrderFixture references menu items by name.
type OrderFixture struct {
	CustomerName string        `yaml:"customerName"`
	TableNumber  int           `yaml:"tableNumber"`
	Status       string        `yaml:"status"`
	Items        []LineFixture `yaml:"items"`
}

type LineFixture struct {
	MenuItem string `yaml:"menuItem"`
	Quantity int    `yaml:"quantity"`
}

// DefaultCatalog returns the embedded sample data.
func DefaultCatalog() (Catalog, error) {
	return LoadCatalog(defaultCatalog)
}

// LoadCatalog decodes YAML, rejecting unknown keys.
func LoadCatalog(data []byte) (Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return Catalog{}, errors.Wrap(err, "decode catalog")
	}
	return c, nil
}

type (
	CreateMenuItemHandler interface {
		Handle(ctx context.Context, cmd commands.CreateMenuItemCommand) (*menu.MenuItem, error)
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error)
	}
)

type Result struct {
	MenuItems int
	Orders    int
}

type Seeder struct {
	createMenuItem CreateMenuItemHandler
	createOrder    CreateOrderHandler
	changeStatus   ChangeOrderStatusHandler
	logger         *slog.Logger
}

func NewSeeder(
	createMenuItem CreateMenuItemHandler,
	createOrder CreateOrderHandler,
	changeStatus ChangeOrderStatusHandler,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		createMenuItem: createMenuItem,
		createOrder:    createOrder,
		changeStatus:   changeStatus,
		logger:         logger.With("component", "seed"),
	}
}

// Run creates every menu item, then places every order and moves it to its
// fixture status. It stops at the first failure; rows written before it stay.
func (s *Seeder) Run(ctx context.Context, catalog Catalog) (Result, error) {
	var res Result

	ids := make(map[string]kernel.UUID, len(catalog.MenuItems))
	for _, f := range catalog.MenuItems {
		price, available := f.Price, f.IsAvailable
		cmd, err := commands.NewCreateMenuItemCommand(commands.CreateMenuItemInput{
			Name:            f.Name,
			Description:     f.Description,
			Category:        f.Category,
			Price:           &price,
			Ingredients:     f.Ingredients,
			IsAvailable:     &available,
			PreparationTime: f.PreparationTime,
			ImageURL:        f.ImageURL,
		})
		if err != nil {
			return res, errors.Wrapf(err, "menu item %q", f.Name)
		}
		item, err := s.createMenuItem.Handle(ctx, cmd)
		if err != nil {
			return res, errors.Wrapf(err, "create menu item %q", f.Name)
		}
		ids[f.Name] = item.ID()
		res.MenuItems++
	}
	s.logger.InfoContext(ctx, "Inserted menu items", "count", res.MenuItems)

	for i, f := range catalog.Orders {
		if err := s.placeOrder(ctx, ids, f); err != nil {
			return res, errors.Wrapf(err, "order %d (%s)", i, f.CustomerName)
		}
		res.Orders++
	}
	s.logger.InfoContext(ctx, "Inserted sample orders", "count", res.Orders)

	return res, nil
}

func (s *Seeder) placeOrder(ctx context.Context, ids map[string]kernel.UUID, f OrderFixture) error {
	target := order.Pending
	if f.Status != "" {
		parsed, err := order.ParseStatus(f.Status)
		if err != nil {
			return err
		}
		target = parsed
	}
	path, err := StatusPath(target)
	if err != nil {
		return err
	}

	lines := make([]commands.OrderLine, 0, len(f.Items))
	for _, l := range f.Items {
		id, found := ids[l.MenuItem]
		if !found {
			return errors.Errorf("unknown menu item %q", l.MenuItem)
		}
		lines = append(lines, commands.OrderLine{MenuItemID: id, Quantity: l.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(f.CustomerName, f.TableNumber, lines)
	if err != nil {
		return err
	}
	o, err := s.createOrder.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	for _, next := range path {
		change, err := commands.NewChangeOrderStatusCommand(o.ID(), next.String())
		if err != nil {
			return err
		}
		if _, err = s.changeStatus.Handle(ctx, change); err != nil {
			return errors.Wrapf(err, "move to %s", next)
		}
	}
	return nil
}

// StatusPath returns the shortest sequence of transitions that takes a new
// order from Pending to target. Pending itself yields an empty path.
func StatusPath(target order.Status) ([]order.Status, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}

	prev := map[order.Status]order.Status{order.Pending: order.Unknown}
	queue := []order.Status{order.Pending}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == target {
			break
		}
		for _, next := range cur.AllowedNext() {
			if _, seen := prev[next]; !seen {
				prev[next] = cur
				queue = append(queue, next)
			}
		}
	}

	if _, reached := prev[target]; !reached {
		return nil, errors.Errorf("%s is not reachable from %s", target, order.Pending)
	}
	var path []order.Status
	for s := target; s != order.Pending; s = prev[s] {
		path = append([]order.Status{s}, path...)
	}
	return path, nil
}
