package app

import (
	"context"
	"sort"
	"sync"
	"time"

	"gigboard/internal/common"
	"gigboard/internal/domain/application"
	"gigboard/internal/domain/gig"
	"gigboard/internal/domain/user"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*user.User
	byID    map[common.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*user.User),
		byID:    make(map[common.UUID]*user.User),
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, u user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.Email = user.NormalizeEmail(u.Email)
	if _, ok := r.byEmail[u.Email]; ok {
		return nil, common.NewError(common.CodeConflict, "email already registered", nil)
	}
	u.ID = common.NewUUID()
	u.CreatedAt = time.Now().UTC()
	stored := u
	r.byEmail[u.Email] = &stored
	r.byID[u.ID] = &stored
	return &u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account := r.byEmail[user.NormalizeEmail(email)]
	if account == nil {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	copied := *account
	return &copied, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id common.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account := r.byID[id]
	if account == nil {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	copied := *account
	return &copied, nil
}

type fakeGigRepo struct {
	mu   sync.Mutex
	gigs map[common.UUID]*gig.Gig
	seq  int
}

func newFakeGigRepo() *fakeGigRepo {
	return &fakeGigRepo{gigs: make(map[common.UUID]*gig.Gig)}
}

func (r *fakeGigRepo) Create(ctx context.Context, g gig.Gig) (*gig.Gig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g.ID = common.NewUUID()
	r.seq++
	g.CreatedAt = time.Now().UTC().Add(time.Duration(r.seq) * time.Millisecond)
	if g.Status == "" {
		g.Status = gig.StatusOpen
	}
	if g.WorkersNeeded <= 0 {
		g.WorkersNeeded = 1
	}
	stored := g
	r.gigs[g.ID] = &stored
	return &g, nil
}

func (r *fakeGigRepo) GetByID(ctx context.Context, id common.UUID) (*gig.Gig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g := r.gigs[id]
	if g == nil {
		return nil, common.NewError(common.CodeNotFound, "gig not found", nil)
	}
	copied := *g
	return &copied, nil
}

func (r *fakeGigRepo) ListNewest(ctx context.Context, limit int) ([]gig.Gig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]gig.Gig, 0, len(r.gigs))
	for _, g := range r.gigs {
		items = append(items, *g)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (r *fakeGigRepo) ListByOwner(ctx context.Context, ownerID common.UUID, limit int) ([]gig.Gig, error) {
	all, _ := r.ListNewest(ctx, 0)
	var items []gig.Gig
	for _, g := range all {
		if g.OwnerID == ownerID {
			items = append(items, g)
		}
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func userFixture(email string) user.User {
	return user.User{Name: "Test User", Email: email, PasswordHash: "x"}
}

type pairKey struct {
	gigID    common.UUID
	workerID common.UUID
}

type fakeApplicationRepo struct {
	mu     sync.Mutex
	apps   map[common.UUID]*application.Application
	byPair map[pairKey]common.UUID
	gigs   *fakeGigRepo
	users  *fakeUserRepo
	seq    int
}

func newFakeApplicationRepo(gigs *fakeGigRepo, users *fakeUserRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		apps:   make(map[common.UUID]*application.Application),
		byPair: make(map[pairKey]common.UUID),
		gigs:   gigs,
		users:  users,
	}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pairKey{gigID: app.GigID, workerID: app.WorkerID}
	if _, ok := r.byPair[key]; ok {
		return nil, common.NewError(common.CodeConflict, "already applied", nil)
	}
	app.ID = common.NewUUID()
	r.seq++
	app.CreatedAt = time.Now().UTC().Add(time.Duration(r.seq) * time.Millisecond)
	if app.Status == "" {
		app.Status = application.StatusPending
	}
	stored := app
	r.apps[app.ID] = &stored
	r.byPair[key] = app.ID
	return &app, nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app := r.apps[id]
	if app == nil {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	copied := *app
	return &copied, nil
}

func (r *fakeApplicationRepo) FindByGigAndWorker(ctx context.Context, gigID, workerID common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byPair[pairKey{gigID: gigID, workerID: workerID}]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	copied := *r.apps[id]
	return &copied, nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	app := r.apps[id]
	if app == nil {
		return common.NewError(common.CodeNotFound, "application not found", nil)
	}
	app.Status = status
	return nil
}

func (r *fakeApplicationRepo) ListForWorker(ctx context.Context, workerID common.UUID) ([]application.WorkerInboxItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.WorkerInboxItem
	for _, app := range r.apps {
		if app.WorkerID != workerID {
			continue
		}
		item := application.WorkerInboxItem{Application: *app}
		if g, err := r.gigs.GetByID(ctx, app.GigID); err == nil {
			item.GigTitle = g.Title
			item.EmployerName = g.EmployerName
			item.GigLocation = g.Location
			item.GigPay = g.Pay
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (r *fakeApplicationRepo) ListForOwner(ctx context.Context, ownerID common.UUID) ([]application.OwnerInboxItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.OwnerInboxItem
	for _, app := range r.apps {
		g, err := r.gigs.GetByID(ctx, app.GigID)
		if err != nil || g.OwnerID != ownerID {
			continue
		}
		item := application.OwnerInboxItem{Application: *app, GigTitle: g.Title}
		if worker, err := r.users.GetByID(ctx, app.WorkerID); err == nil {
			item.WorkerName = worker.Name
			item.WorkerEmail = worker.Email
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}
