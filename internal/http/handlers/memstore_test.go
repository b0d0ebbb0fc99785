package handlers

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/insurehub/insurance-be/internal/models"
	"github.com/insurehub/insurance-be/internal/storage"
)

// memStore is an in-memory storage.Store with the same error contract as the
// Postgres implementation, so handler tests run without a database.
type memStore struct {
	mu sync.Mutex

	users     map[int64]models.User
	policies  map[int64]models.Policy
	holders   map[int64]models.PolicyHolder
	purchases []models.Purchase
	claims    map[int64]models.Claim

	nextUserID   int64
	nextPolicyID int64
	nextHolderID int64
	nextClaimID  int64

	// failPurchaseInsert makes the next BuyPolicy fail after the holder step
	// would have run, to exercise the all-or-nothing contract.
	failPurchaseInsert bool
}

var _ storage.Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[int64]models.User),
		policies: make(map[int64]models.Policy),
		holders:  make(map[int64]models.PolicyHolder),
		claims:   make(map[int64]models.Claim),
	}
}

func (m *memStore) Ping(ctx context.Context) error { return nil }

func (m *memStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Username == user.Username {
			return models.User{}, storage.ErrAlreadyExists
		}
	}
	m.nextUserID++
	user.ID = m.nextUserID
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return user, nil
}

func (m *memStore) FindByUsername(ctx context.Context, username string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (m *memStore) ListPolicies(ctx context.Context) ([]models.Policy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Policy, 0, len(m.policies))
	for _, p := range m.policies {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) CreatePolicy(ctx context.Context, policy models.Policy) (models.Policy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextPolicyID++
	policy.ID = m.nextPolicyID
	m.policies[policy.ID] = policy
	return policy, nil
}

func (m *memStore) UpdatePolicy(ctx context.Context, policy models.Policy) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.policies[policy.ID]; !ok {
		return storage.ErrNotFound
	}
	m.policies[policy.ID] = policy
	return nil
}

func (m *memStore) DeletePolicy(ctx context.Context, policyID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, purchase := range m.purchases {
		if purchase.PolicyID == policyID {
			return storage.ErrConflict
		}
	}
	if _, ok := m.policies[policyID]; !ok {
		return storage.ErrNotFound
	}
	delete(m.policies, policyID)
	return nil
}

func (m *memStore) ListHolders(ctx context.Context) ([]models.PolicyHolder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.PolicyHolder, 0, len(m.holders))
	for _, h := range m.holders {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) CreateHolder(ctx context.Context, holder models.PolicyHolder) (models.PolicyHolder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextHolderID++
	holder.ID = m.nextHolderID
	m.holders[holder.ID] = holder
	return holder, nil
}

func (m *memStore) FindHolderByUserID(ctx context.Context, userID int64) (models.PolicyHolder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findHolderLocked(userID)
}

func (m *memStore) findHolderLocked(userID int64) (models.PolicyHolder, error) {
	for _, h := range m.holders {
		if h.UserID == userID {
			return h, nil
		}
	}
	return models.PolicyHolder{}, storage.ErrNotFound
}

func (m *memStore) BuyPolicy(ctx context.Context, userID, policyID int64, holder models.PolicyHolder) (models.Purchase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, err := m.findHolderLocked(userID)
	holderCreated := false
	if errors.Is(err, storage.ErrNotFound) {
		m.nextHolderID++
		holder.ID = m.nextHolderID
		holder.UserID = userID
		m.holders[holder.ID] = holder
		existing = holder
		holderCreated = true
	}

	rollback := func() {
		if holderCreated {
			delete(m.holders, existing.ID)
			m.nextHolderID--
		}
	}

	policy, ok := m.policies[policyID]
	if !ok {
		rollback()
		return models.Purchase{}, storage.ErrNotFound
	}
	if m.failPurchaseInsert {
		rollback()
		return models.Purchase{}, errors.New("insert purchase: forced failure")
	}

	purchase := models.Purchase{
		ID:             int64(len(m.purchases) + 1),
		UserID:         userID,
		PolicyID:       policyID,
		PolicyHolderID: existing.ID,
		Reference:      uuid.NewString(),
		Premium:        policy.Premium,
		PurchaseDate:   time.Now(),
	}
	m.purchases = append(m.purchases, purchase)
	return purchase, nil
}

func (m *memStore) ListUserPolicies(ctx context.Context, userID int64) ([]models.PurchasedPolicy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	latest := make(map[int64]time.Time)
	for _, purchase := range m.purchases {
		if purchase.UserID != userID {
			continue
		}
		if purchase.PurchaseDate.After(latest[purchase.PolicyID]) {
			latest[purchase.PolicyID] = purchase.PurchaseDate
		}
	}
	var out []models.PurchasedPolicy
	for policyID, when := range latest {
		out = append(out, models.PurchasedPolicy{Policy: m.policies[policyID], LatestPurchase: when})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LatestPurchase.After(out[j].LatestPurchase) })
	return out, nil
}

func (m *memStore) SubmitClaim(ctx context.Context, claim models.Claim) (models.Claim, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextClaimID++
	claim.ID = m.nextClaimID
	claim.Status = models.ClaimPending
	m.claims[claim.ID] = claim
	return claim, nil
}

func (m *memStore) ListHolderClaims(ctx context.Context, holderID int64) ([]models.Claim, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Claim
	for _, c := range m.claims {
		if c.PolicyHolderID == holderID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memStore) ListPendingClaims(ctx context.Context) ([]models.Claim, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Claim
	for _, c := range m.claims {
		if c.Status == models.ClaimPending {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) UpdateClaimStatus(ctx context.Context, claimID int64, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	claim, ok := m.claims[claimID]
	if !ok {
		return storage.ErrNotFound
	}
	if claim.Status != models.ClaimPending {
		return storage.ErrConflict
	}
	claim.Status = status
	m.claims[claimID] = claim
	return nil
}

func (m *memStore) GenerateReport(ctx context.Context) (models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	report := models.Report{TotalPolicies: int64(len(m.policies))}
	for _, c := range m.claims {
		report.TotalClaims++
		if c.Status == models.ClaimApproved {
			report.ApprovedClaims++
			report.ApprovedClaimAmount += c.Amount
		}
	}
	for _, p := range m.policies {
		report.TotalPremium += p.Premium
	}
	sold := make(map[string]int64)
	for _, purchase := range m.purchases {
		sold[m.policies[purchase.PolicyID].Name]++
	}
	names := make([]string, 0, len(sold))
	for name := range sold {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		report.PoliciesSold = append(report.PoliciesSold, models.PolicySales{PolicyName: name, Sold: sold[name]})
	}
	return report, nil
}
