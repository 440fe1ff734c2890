package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testAuthConfig() *config.Config {
	return &config.Config{Auth: &config.AuthConfig{PasswordMinLength: 6}}
}

// --- In-memory repositories ---

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User // keyed by ID

	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	clone := *user
	r.users[user.ID] = &clone

	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		clone := *user

		return &clone, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) UpdateAddress(_ context.Context, id string, patch repository.AddressPatch) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	user.Phone = patch.Phone
	user.Address.Street = patch.Street
	user.Address.City = patch.City
	user.Address.State = patch.State
	user.Address.PostalCode = patch.PostalCode
	clone := *user

	return &clone, nil
}

type productKeyPair struct {
	id       string
	category string
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[productKeyPair]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[productKeyPair]*entity.Product{}}
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *product
	r.products[productKeyPair{product.ID, product.Category}] = &clone

	return nil
}

func (r *fakeProductRepo) List(_ context.Context, category string) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Product, 0)
	for _, product := range r.products {
		if category == "" || product.Category == category {
			clone := *product
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *fakeProductRepo) Find(_ context.Context, id, category string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product, ok := r.products[productKeyPair{id, category}]; ok {
		clone := *product

		return &clone, nil
	}

	return nil, repository.ErrProductNotFound
}

func (r *fakeProductRepo) FindByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, product := range r.products {
		if key.id == id {
			clone := *product

			return &clone, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

func (r *fakeProductRepo) Update(_ context.Context, id, category string, patch repository.ProductPatch) (*entity.Product, error) {
	if patch.IsEmpty() {
		return nil, repository.ErrEmptyPatch
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[productKeyPair{id, category}]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.ImageURL != nil {
		product.ImageURL = *patch.ImageURL
	}
	if patch.Stock != nil {
		product.Stock = *patch.Stock
	}
	clone := *product

	return &clone, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id, category string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := productKeyPair{id, category}
	if _, ok := r.products[key]; !ok {
		return false, nil
	}
	delete(r.products, key)

	return true, nil
}

type fakeCartRepo struct {
	mu    sync.Mutex
	carts map[string]*entity.Cart

	clearErr error
	clears   int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[string]*entity.Cart{}}
}

func (r *fakeCartRepo) Get(_ context.Context, userID string) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cart, ok := r.carts[userID]; ok {
		clone := *cart
		clone.Items = append([]entity.CartItem(nil), cart.Items...)

		return &clone, nil
	}

	return entity.EmptyCart(userID), nil
}

func (r *fakeCartRepo) Save(_ context.Context, userID string, items []entity.CartItem) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart := &entity.Cart{
		UserID:    userID,
		Items:     append([]entity.CartItem(nil), items...),
		UpdatedAt: time.Now().UTC(),
	}
	r.carts[userID] = cart
	clone := *cart

	return &clone, nil
}

func (r *fakeCartRepo) Clear(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clears++
	if r.clearErr != nil {
		return r.clearErr
	}
	delete(r.carts, userID)

	return nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string][]*entity.Order // keyed by user, newest first

	createErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string][]*entity.Order{}}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	clone := *order
	r.orders[order.UserID] = append(r.orders[order.UserID], &clone)
	sort.Slice(r.orders[order.UserID], func(i, j int) bool {
		return r.orders[order.UserID][i].ID > r.orders[order.UserID][j].ID
	})

	return nil
}

func (r *fakeOrderRepo) ListByUser(_ context.Context, userID string) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Order, 0, len(r.orders[userID]))
	for _, order := range r.orders[userID] {
		clone := *order
		out = append(out, &clone)
	}

	return out, nil
}

func (r *fakeOrderRepo) Find(_ context.Context, userID, orderID string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, order := range r.orders[userID] {
		if order.ID == orderID {
			clone := *order

			return &clone, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

// --- Fake domain services ---

// fakePasswordHasher is a transparent stand in for bcrypt.
type fakePasswordHasher struct{}

func (fakePasswordHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type fakeTokenService struct{}

func (fakeTokenService) IssueToken(userID, email string) (string, error) {
	return fmt.Sprintf("token|%s|%s", userID, email), nil
}

func (fakeTokenService) ValidateToken(token string) (*service.Claims, error) {
	parts := strings.Split(token, "|")
	if len(parts) != 3 || parts[0] != "token" {
		return nil, service.ErrTokenMalformed
	}

	return &service.Claims{UserID: parts[1], Email: parts[2]}, nil
}

func (fakeTokenService) TokenDuration() time.Duration { return 24 * time.Hour }

type fakeIdentityGenerator struct {
	mu   sync.Mutex
	next int
}

func (g *fakeIdentityGenerator) seq() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++

	return g.next
}

func (g *fakeIdentityGenerator) NewUserID() string {
	return fmt.Sprintf("USER-%032d", g.seq())
}

func (g *fakeIdentityGenerator) NewProductID() string {
	return fmt.Sprintf("PROD-%08d", g.seq())
}

func (g *fakeIdentityGenerator) NewOrderID() (string, error) {
	return fmt.Sprintf("ORD-%032d", g.seq()), nil
}

func oneCartItem() []entity.CartItem {
	return []entity.CartItem{
		{ProductID: "PROD-1", Name: "Novel", Price: 1050, Quantity: 2},
	}
}

func intPtr(i int) *int { return &i }

func moneyPtr(cents int64) *entity.Money {
	m := entity.NewMoneyFromCents(cents)
	return &m
}
