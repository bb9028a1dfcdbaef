package services

import (
	"context"
	"time"

	"shop-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeCartStore is an in-memory CartStore. Documents are copied on the way
// in and out, mimicking a remote store where each read is a snapshot.
type fakeCartStore struct {
	carts    map[primitive.ObjectID]*models.Cart
	findErr  error
	saveErr  error
	saveSeen int
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: make(map[primitive.ObjectID]*models.Cart)}
}

func copyCart(c *models.Cart) *models.Cart {
	cp := *c
	cp.Items = append([]models.CartItem(nil), c.Items...)
	return &cp
}

func (f *fakeCartStore) FindByUser(_ context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	cart, ok := f.carts[userID]
	if !ok {
		return nil, nil
	}
	return copyCart(cart), nil
}

func (f *fakeCartStore) Save(_ context.Context, cart *models.Cart) error {
	f.saveSeen++
	if f.saveErr != nil {
		return f.saveErr
	}
	cart.UpdatedAt = time.Now().UTC()
	f.carts[cart.UserID] = copyCart(cart)
	return nil
}

// fakeCatalog is an in-memory ProductFinder.
type fakeCatalog struct {
	products map[primitive.ObjectID]*models.Product
	findErr  error
}

func newFakeCatalog(products ...*models.Product) *fakeCatalog {
	f := &fakeCatalog{products: make(map[primitive.ObjectID]*models.Product)}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeCatalog) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	product, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	return product, nil
}

// fakeOrderStore records created orders and can simulate insert failure.
type fakeOrderStore struct {
	orders    []*models.Order
	createErr error
}

func (f *fakeOrderStore) Create(_ context.Context, order *models.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	order.ID = primitive.NewObjectID()
	cp := *order
	cp.Items = append([]models.OrderItem(nil), order.Items...)
	f.orders = append(f.orders, &cp)
	return nil
}

func (f *fakeOrderStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderStore) Find(_ context.Context, _ bson.M, _ *options.FindOptions) ([]*models.Order, error) {
	return f.orders, nil
}

func (f *fakeOrderStore) Count(_ context.Context, _ bson.M) (int64, error) {
	return int64(len(f.orders)), nil
}

func (f *fakeOrderStore) Update(_ context.Context, id primitive.ObjectID, updates bson.M) (int64, error) {
	for _, o := range f.orders {
		if o.ID == id {
			if v, ok := updates["customerName"].(string); ok {
				o.CustomerName = v
			}
			if v, ok := updates["customerEmail"].(string); ok {
				o.CustomerEmail = v
			}
			if v, ok := updates["items"].([]models.OrderItem); ok {
				o.Items = v
			}
			if v, ok := updates["total"].(float64); ok {
				o.Total = v
			}
			return 1, nil
		}
	}
	return 0, nil
}

// fakePublisher records checkout events.
type fakePublisher struct {
	events []models.CheckoutEvent
	err    error
}

func (f *fakePublisher) SendCheckoutEvent(event models.CheckoutEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

// fakeUserStore is an in-memory UserStore keyed by email and id.
type fakeUserStore struct {
	users     map[primitive.ObjectID]*models.User
	createErr error
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	f := &fakeUserStore{users: make(map[primitive.ObjectID]*models.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) FindByResetToken(_ context.Context, token string, now time.Time) (*models.User, error) {
	for _, u := range f.users {
		if u.ResetToken == token && u.ResetTokenExpiresAt.After(now) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = primitive.NewObjectID()
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserStore) Update(_ context.Context, id primitive.ObjectID, updates bson.M) (int64, error) {
	u, ok := f.users[id]
	if !ok {
		return 0, nil
	}
	for key, val := range updates {
		switch key {
		case "first_name":
			u.FirstName = val.(string)
		case "last_name":
			u.LastName = val.(string)
		case "username":
			u.Username = val.(string)
		case "password":
			u.Password = val.(string)
		case "resetToken":
			u.ResetToken = val.(string)
		case "resetTokenExpiresAt":
			u.ResetTokenExpiresAt = val.(time.Time)
		case "wrongPasswordCount":
			u.WrongPasswordCount = val.(int)
		case "blockedUntil":
			u.BlockedUntil = val.(time.Time)
		}
	}
	return 1, nil
}

// fakeMailer records outbound mail.
type fakeMailer struct {
	to      []string
	bodies  []string
	sendErr error
}

func (f *fakeMailer) Send(to, _, body string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.to = append(f.to, to)
	f.bodies = append(f.bodies, body)
	return nil
}
