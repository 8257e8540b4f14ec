package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/repository/repoargs"
	"github.com/fsdevblog/uc-store/pkg/uow"
	"github.com/shopspring/decimal"
)

// memLedger хранилище в памяти, реализующее uow.UOW и репозитории сервисов. Транзакции выполняются
// последовательно под мьютексом, при ошибке состояние восстанавливается из снимка. Блокировки строк и
// условные UPDATE здесь не моделируются: их проверяют тесты pgrepo на настоящей базе.
type memLedger struct {
	mu    sync.Mutex
	state *memState

	failOrderCreate  bool
	failNotification bool
}

type memState struct {
	seq           int64
	users         map[int64]domain.User
	products      map[int64]domain.Product
	codes         map[int64]domain.Code
	orders        map[int64]domain.Order
	deposits      map[int64]domain.Deposit
	notifications []domain.Notification
	settings      map[string]domain.Setting
}

func newMemLedger() *memLedger {
	return &memLedger{state: &memState{
		users:    make(map[int64]domain.User),
		products: make(map[int64]domain.Product),
		codes:    make(map[int64]domain.Code),
		orders:   make(map[int64]domain.Order),
		deposits: make(map[int64]domain.Deposit),
		settings: make(map[string]domain.Setting),
	}}
}

func (s *memState) clone() *memState {
	c := &memState{
		seq:           s.seq,
		users:         make(map[int64]domain.User, len(s.users)),
		products:      make(map[int64]domain.Product, len(s.products)),
		codes:         make(map[int64]domain.Code, len(s.codes)),
		orders:        make(map[int64]domain.Order, len(s.orders)),
		deposits:      make(map[int64]domain.Deposit, len(s.deposits)),
		notifications: append([]domain.Notification(nil), s.notifications...),
		settings:      make(map[string]domain.Setting, len(s.settings)),
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.codes {
		c.codes[k] = v
	}
	for k, v := range s.orders {
		c.orders[k] = v
	}
	for k, v := range s.deposits {
		c.deposits[k] = v
	}
	for k, v := range s.settings {
		c.settings[k] = v
	}
	return c
}

func (s *memState) nextID() int64 {
	s.seq++
	return s.seq
}

func (l *memLedger) Register(_ uow.RepositoryName, _ uow.RepositoryFactory) error {
	return nil
}

//nolint:nonamedreturns
func (l *memLedger) Do(ctx context.Context, fn func(context.Context, uow.TX) error) (err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := l.state.clone()
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", uow.ErrTransactionPanic, p)
		}
		if err != nil {
			l.state = snapshot
		}
	}()
	return fn(ctx, memTX{l: l})
}

func (l *memLedger) GetRepository(name uow.RepositoryName) (uow.Repository, error) {
	return l.repository(name, true)
}

func (l *memLedger) repository(name uow.RepositoryName, locking bool) (uow.Repository, error) {
	base := memBase{l: l, locking: locking}
	switch repoargs.RepositoryName(name) {
	case repoargs.UserRepoName:
		return &memUserRepo{base}, nil
	case repoargs.ProductRepoName:
		return &memProductRepo{base}, nil
	case repoargs.CodeRepoName:
		return &memCodeRepo{base}, nil
	case repoargs.OrderRepoName:
		return &memOrderRepo{base}, nil
	case repoargs.DepositRepoName:
		return &memDepositRepo{base}, nil
	case repoargs.NotificationRepoName:
		return &memNotificationRepo{base}, nil
	case repoargs.SettingRepoName:
		return &memSettingRepo{base}, nil
	default:
		return nil, uow.ErrRepositoryNotRegistered
	}
}

// snapshot копия текущего состояния для проверок в тестах.
func (l *memLedger) snapshot() *memState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.clone()
}

func (l *memLedger) seedUser(balance string) domain.User {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.state.nextID()
	u := domain.User{
		ID:          id,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		Email:       fmt.Sprintf("user%d@example.com", id),
		Name:        fmt.Sprintf("user %d", id),
		Balance:     decimal.RequireFromString(balance),
		Role:        domain.RoleUser,
		CanPurchase: true,
	}
	l.state.users[id] = u
	return u
}

func (l *memLedger) updateUser(id int64, fn func(u *domain.User)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	u := l.state.users[id]
	fn(&u)
	l.state.users[id] = u
}

func (l *memLedger) seedProduct(name, price string, active bool, codes ...string) domain.Product {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.state.nextID()
	p := domain.Product{
		ID:        id,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Name:      name,
		UCAmount:  60, //nolint:mnd
		Price:     decimal.RequireFromString(price),
		IsActive:  active,
	}
	l.state.products[id] = p
	for _, code := range codes {
		codeID := l.state.nextID()
		l.state.codes[codeID] = domain.Code{ID: codeID, CreatedAt: time.Now(), ProductID: id, Code: code}
	}
	return p
}

func (l *memLedger) seedDeposit(userID int64, amount, txRef string) domain.Deposit {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.state.nextID()
	d := domain.Deposit{
		ID:            id,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
		UserID:        userID,
		Amount:        decimal.RequireFromString(amount),
		TransactionID: txRef,
		Status:        domain.DepositStatusPending,
	}
	l.state.deposits[id] = d
	return d
}

type memTX struct {
	l *memLedger
}

func (t memTX) Get(name uow.RepositoryName) (uow.Repository, error) {
	return t.l.repository(name, false)
}

// memBase доступ к состоянию. Вне транзакции каждый вызов берет мьютекс сам, внутри транзакции мьютекс уже
// захвачен Do.
type memBase struct {
	l       *memLedger
	locking bool
}

func (b memBase) with(fn func(s *memState) error) error {
	if b.locking {
		b.l.mu.Lock()
		defer b.l.mu.Unlock()
	}
	return fn(b.l.state)
}

type memUserRepo struct{ memBase }

func (r *memUserRepo) CreateUser(_ context.Context, args repoargs.CreateUser) (*domain.User, error) {
	var res domain.User
	err := r.with(func(s *memState) error {
		for _, u := range s.users {
			if u.Email == args.Email {
				return domain.ErrDuplicateKey
			}
		}
		res = domain.User{
			ID:                s.nextID(),
			CreatedAt:         time.Now(),
			UpdatedAt:         time.Now(),
			Email:             args.Email,
			Name:              args.Name,
			EncryptedPassword: args.Password,
			Role:              args.Role,
			CanPurchase:       true,
		}
		s.users[res.ID] = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	var res *domain.User
	err := r.with(func(s *memState) error {
		for _, u := range s.users {
			if u.Email == email {
				res = &u
				return nil
			}
		}
		return domain.ErrRecordNotFound
	})
	return res, err
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	var res domain.User
	err := r.with(func(s *memState) error {
		u, ok := s.users[id]
		if !ok {
			return domain.ErrRecordNotFound
		}
		res = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *memUserRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.User, error) {
	return r.GetByID(ctx, id)
}

func (r *memUserRepo) AdjustBalance(_ context.Context, id int64, delta decimal.Decimal) (decimal.Decimal, error) {
	var res decimal.Decimal
	err := r.with(func(s *memState) error {
		u, ok := s.users[id]
		if !ok {
			return domain.ErrRecordNotFound
		}
		next := u.Balance.Add(delta)
		if next.IsNegative() {
			return domain.ErrNotEnoughBalance
		}
		u.Balance = next
		s.users[id] = u
		res = next
		return nil
	})
	return res, err
}

func (r *memUserRepo) update(id int64, fn func(u *domain.User)) (*domain.User, error) {
	var res domain.User
	err := r.with(func(s *memState) error {
		u, ok := s.users[id]
		if !ok {
			return domain.ErrRecordNotFound
		}
		fn(&u)
		u.UpdatedAt = time.Now()
		s.users[id] = u
		res = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *memUserRepo) SetBalance(_ context.Context, id int64, balance decimal.Decimal) (*domain.User, error) {
	return r.update(id, func(u *domain.User) { u.Balance = balance })
}

func (r *memUserRepo) SetBanned(_ context.Context, id int64, banned bool, reason *string) (*domain.User, error) {
	return r.update(id, func(u *domain.User) {
		u.IsBanned = banned
		u.BanReason = reason
	})
}

func (r *memUserRepo) SetCanPurchase(_ context.Context, id int64, canPurchase bool) (*domain.User, error) {
	return r.update(id, func(u *domain.User) { u.CanPurchase = canPurchase })
}

func (r *memUserRepo) UpdatePassword(_ context.Context, id int64, encryptedPassword string) error {
	_, err := r.update(id, func(u *domain.User) { u.EncryptedPassword = encryptedPassword })
	return err
}

func (r *memUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	var res []domain.User
	err := r.with(func(s *memState) error {
		for _, u := range s.users {
			res = append(res, u)
		}
		return nil
	})
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, err
}

type memProductRepo struct{ memBase }

func (r *memProductRepo) Create(_ context.Context, args repoargs.CreateProduct) (*domain.Product, error) {
	var res domain.Product
	err := r.with(func(s *memState) error {
		res = domain.Product{
			ID:        s.nextID(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
			Name:      args.Name,
			UCAmount:  args.UCAmount,
			Price:     args.Price,
			Image:     args.Image,
			IsActive:  true,
		}
		s.products[res.ID] = res
		return nil
	})
	return &res, err
}

func (r *memProductRepo) Update(_ context.Context, id int64, args repoargs.UpdateProduct) (*domain.Product, error) {
	var res domain.Product
	err := r.with(func(s *memState) error {
		p, ok := s.products[id]
		if !ok {
			return domain.ErrRecordNotFound
		}
		if args.Name != nil {
			p.Name = *args.Name
		}
		if args.UCAmount != nil {
			p.UCAmount = *args.UCAmount
		}
		if args.Price != nil {
			p.Price = *args.Price
		}
		if args.Image != nil {
			p.Image = args.Image
		}
		if args.IsActive != nil {
			p.IsActive = *args.IsActive
		}
		s.products[id] = p
		res = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *memProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	var res domain.Product
	err := r.with(func(s *memState) error {
		p, ok := s.products[id]
		if !ok {
			return domain.ErrRecordNotFound
		}
		res = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *memProductRepo) FindActive(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, domain.ErrRecordNotFound
	}
	return p, nil
}

func (r *memProductRepo) list(activeOnly bool) ([]domain.ProductStock, error) {
	var res []domain.ProductStock
	err := r.with(func(s *memState) error {
		for _, p := range s.products {
			if activeOnly && !p.IsActive {
				continue
			}
			stock := domain.ProductStock{Product: p}
			for _, c := range s.codes {
				if c.ProductID != p.ID {
					continue
				}
				stock.Total++
				if !c.IsUsed {
					stock.Available++
				}
			}
			res = append(res, stock)
		}
		return nil
	})
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, err
}

func (r *memProductRepo) ListActiveWithStock(_ context.Context) ([]domain.ProductStock, error) {
	return r.list(true)
}

func (r *memProductRepo) ListAllWithStock(_ context.Context) ([]domain.ProductStock, error) {
	return r.list(false)
}

type memCodeRepo struct{ memBase }

func sortedCodes(s *memState, productID int64) []domain.Code {
	var res []domain.Code
	for _, c := range s.codes {
		if c.ProductID == productID {
			res = append(res, c)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

func (r *memCodeRepo) FindUnused(_ context.Context, productID int64) (*domain.Code, error) {
	var res *domain.Code
	err := r.with(func(s *memState) error {
		for _, c := range sortedCodes(s, productID) {
			if !c.IsUsed {
				res = &c
				return nil
			}
		}
		return domain.ErrRecordNotFound
	})
	return res, err
}

func (r *memCodeRepo) MarkUsed(_ context.Context, codeID, orderID int64) error {
	return r.with(func(s *memState) error {
		c, ok := s.codes[codeID]
		if !ok || c.IsUsed {
			return domain.ErrCodeAlreadyUsed
		}
		c.IsUsed = true
		c.OrderID = &orderID
		s.codes[codeID] = c
		return nil
	})
}

func (r *memCodeRepo) BatchCreate(
	_ context.Context,
	productID int64,
	codes []string,
	fn repoargs.BatchExecQueryRow,
) error {
	return r.with(func(s *memState) error {
		for i, code := range codes {
			var dup bool
			for _, c := range s.codes {
				if c.ProductID == productID && c.Code == code {
					dup = true
					break
				}
			}
			if dup {
				fn(i, domain.ErrDuplicateKey)
				continue
			}
			id := s.nextID()
			s.codes[id] = domain.Code{ID: id, CreatedAt: time.Now(), ProductID: productID, Code: code}
			fn(i, nil)
		}
		return nil
	})
}

func (r *memCodeRepo) GetByProductID(_ context.Context, productID int64) ([]domain.Code, error) {
	var res []domain.Code
	err := r.with(func(s *memState) error {
		res = sortedCodes(s, productID)
		return nil
	})
	return res, err
}

func (r *memCodeRepo) CountAvailable(_ context.Context, productID int64) (int64, error) {
	var res int64
	err := r.with(func(s *memState) error {
		for _, c := range sortedCodes(s, productID) {
			if !c.IsUsed {
				res++
			}
		}
		return nil
	})
	return res, err
}

type memOrderRepo struct{ memBase }

var errInjected = errors.New("injected failure")

func (r *memOrderRepo) Create(_ context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	var res domain.Order
	err := r.with(func(s *memState) error {
		if r.l.failOrderCreate {
			return errInjected
		}
		for _, o := range s.orders {
			if o.CodeID == args.CodeID {
				return domain.ErrDuplicateKey
			}
		}
		res = domain.Order{
			ID:        s.nextID(),
			CreatedAt: time.Now(),
			UserID:    args.UserID,
			ProductID: args.ProductID,
			CodeID:    args.CodeID,
			PlayerID:  args.PlayerID,
			Amount:    args.Amount,
			Status:    domain.OrderStatusCompleted,
		}
		s.orders[res.ID] = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *memOrderRepo) details(filter func(o domain.Order) bool) ([]domain.OrderDetails, error) {
	var res []domain.OrderDetails
	err := r.with(func(s *memState) error {
		for _, o := range s.orders {
			if !filter(o) {
				continue
			}
			p := s.products[o.ProductID]
			u := s.users[o.UserID]
			res = append(res, domain.OrderDetails{
				Order:       o,
				ProductName: p.Name,
				UCAmount:    p.UCAmount,
				Code:        s.codes[o.CodeID].Code,
				UserName:    u.Name,
				UserEmail:   u.Email,
			})
		}
		return nil
	})
	sort.Slice(res, func(i, j int) bool { return res[i].ID > res[j].ID })
	return res, err
}

func (r *memOrderRepo) GetByUserID(_ context.Context, userID int64) ([]domain.OrderDetails, error) {
	return r.details(func(o domain.Order) bool { return o.UserID == userID })
}

func (r *memOrderRepo) FindAll(_ context.Context) ([]domain.OrderDetails, error) {
	return r.details(func(domain.Order) bool { return true })
}

type memDepositRepo struct{ memBase }

func (r *memDepositRepo) Create(_ context.Context, args repoargs.CreateDeposit) (*domain.Deposit, error) {
	var res domain.Deposit
	err := r.with(func(s *memState) error {
		if _, ok := s.users[args.UserID]; !ok {
			return domain.ErrRecordNotFound
		}
		res = domain.Deposit{
			ID:            s.nextID(),
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
			UserID:        args.UserID,
			Amount:        args.Amount,
			TransactionID: args.TransactionID,
			Status:        domain.DepositStatusPending,
		}
		s.deposits[res.ID] = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *memDepositRepo) GetByID(_ context.Context, id int64) (*domain.Deposit, error) {
	var res domain.Deposit
	err := r.with(func(s *memState) error {
		d, ok := s.deposits[id]
		if !ok {
			return domain.ErrRecordNotFound
		}
		res = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *memDepositRepo) TransitionStatus(
	_ context.Context,
	id int64,
	from, to domain.DepositStatusType,
) (*domain.Deposit, error) {
	var res domain.Deposit
	err := r.with(func(s *memState) error {
		d, ok := s.deposits[id]
		if !ok || d.Status != from {
			return domain.ErrRecordNotFound
		}
		d.Status = to
		d.UpdatedAt = time.Now()
		s.deposits[id] = d
		res = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *memDepositRepo) GetByUserID(_ context.Context, userID int64) ([]domain.Deposit, error) {
	var res []domain.Deposit
	err := r.with(func(s *memState) error {
		for _, d := range s.deposits {
			if d.UserID == userID {
				res = append(res, d)
			}
		}
		return nil
	})
	sort.Slice(res, func(i, j int) bool { return res[i].ID > res[j].ID })
	return res, err
}

func (r *memDepositRepo) details(filter func(d domain.Deposit) bool, asc bool) ([]domain.DepositDetails, error) {
	var res []domain.DepositDetails
	err := r.with(func(s *memState) error {
		for _, d := range s.deposits {
			if !filter(d) {
				continue
			}
			u := s.users[d.UserID]
			res = append(res, domain.DepositDetails{Deposit: d, UserName: u.Name, UserEmail: u.Email})
		}
		return nil
	})
	sort.Slice(res, func(i, j int) bool {
		if asc {
			return res[i].ID < res[j].ID
		}
		return res[i].ID > res[j].ID
	})
	return res, err
}

func (r *memDepositRepo) FindAll(_ context.Context) ([]domain.DepositDetails, error) {
	return r.details(func(domain.Deposit) bool { return true }, false)
}

func (r *memDepositRepo) FindPending(_ context.Context) ([]domain.DepositDetails, error) {
	return r.details(func(d domain.Deposit) bool { return d.Status == domain.DepositStatusPending }, true)
}

type memNotificationRepo struct{ memBase }

func (r *memNotificationRepo) Create(
	_ context.Context,
	args repoargs.CreateNotification,
) (*domain.Notification, error) {
	var res domain.Notification
	err := r.with(func(s *memState) error {
		if r.l.failNotification {
			return errInjected
		}
		res = domain.Notification{
			ID:        s.nextID(),
			CreatedAt: time.Now(),
			UserID:    args.UserID,
			Type:      args.Type,
			Title:     args.Title,
			Message:   args.Message,
		}
		s.notifications = append(s.notifications, res)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *memNotificationRepo) GetByUserID(_ context.Context, userID int64, limit uint) ([]domain.Notification, error) {
	var res []domain.Notification
	err := r.with(func(s *memState) error {
		for i := len(s.notifications) - 1; i >= 0 && uint(len(res)) < limit; i-- {
			if s.notifications[i].UserID == userID {
				res = append(res, s.notifications[i])
			}
		}
		return nil
	})
	return res, err
}

func (r *memNotificationRepo) CountUnread(_ context.Context, userID int64) (int64, error) {
	var res int64
	err := r.with(func(s *memState) error {
		for _, n := range s.notifications {
			if n.UserID == userID && !n.IsRead {
				res++
			}
		}
		return nil
	})
	return res, err
}

func (r *memNotificationRepo) MarkRead(_ context.Context, id, userID int64) error {
	return r.with(func(s *memState) error {
		for i := range s.notifications {
			if s.notifications[i].ID == id && s.notifications[i].UserID == userID {
				s.notifications[i].IsRead = true
				return nil
			}
		}
		return domain.ErrRecordNotFound
	})
}

func (r *memNotificationRepo) MarkAllRead(_ context.Context, userID int64) error {
	return r.with(func(s *memState) error {
		for i := range s.notifications {
			if s.notifications[i].UserID == userID {
				s.notifications[i].IsRead = true
			}
		}
		return nil
	})
}

type memSettingRepo struct{ memBase }

func (r *memSettingRepo) Get(_ context.Context, key string) (*domain.Setting, error) {
	var res domain.Setting
	err := r.with(func(s *memState) error {
		v, ok := s.settings[key]
		if !ok {
			return domain.ErrRecordNotFound
		}
		res = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *memSettingRepo) Set(_ context.Context, key, value string) error {
	return r.with(func(s *memState) error {
		s.settings[key] = domain.Setting{Key: key, Value: value, UpdatedAt: time.Now()}
		return nil
	})
}

func (r *memSettingRepo) Delete(_ context.Context, keys ...string) error {
	return r.with(func(s *memState) error {
		for _, k := range keys {
			delete(s.settings, k)
		}
		return nil
	})
}
