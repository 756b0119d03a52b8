package memory

import (
	"context"
	"sort"
	"sync"

	domainreservation "villastay/internal/domain/reservation"
	domainseasonal "villastay/internal/domain/seasonal"
	domainvilla "villastay/internal/domain/villa"
)

// VillaRepository is an in-memory villa store, used in tests and demo mode.
type VillaRepository struct {
	mu    sync.RWMutex
	items map[domainvilla.VillaID]*domainvilla.Villa
}

func NewVillaRepository() *VillaRepository {
	return &VillaRepository{items: make(map[domainvilla.VillaID]*domainvilla.Villa)}
}

func (r *VillaRepository) ByID(ctx context.Context, id domainvilla.VillaID) (*domainvilla.Villa, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[id]
	if !ok {
		return nil, domainvilla.ErrVillaNotFound
	}
	return v, nil
}

func (r *VillaRepository) List(ctx context.Context) ([]*domainvilla.Villa, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domainvilla.Villa, 0, len(r.items))
	for _, v := range r.items {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *VillaRepository) Save(ctx context.Context, v *domainvilla.Villa) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v.Version++
	r.items[v.ID] = v
	return nil
}

// ReservationRepository stores reservations in memory.
type ReservationRepository struct {
	mu    sync.RWMutex
	items map[domainreservation.ReservationID]*domainreservation.Reservation
}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{items: make(map[domainreservation.ReservationID]*domainreservation.Reservation)}
}

func (r *ReservationRepository) ByID(ctx context.Context, id domainreservation.ReservationID) (*domainreservation.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.items[id]
	if !ok {
		return nil, domainreservation.ErrReservationNotFound
	}
	return res, nil
}

func (r *ReservationRepository) ByVilla(ctx context.Context, id domainvilla.VillaID) ([]*domainreservation.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domainreservation.Reservation, 0)
	for _, res := range r.items {
		if res.VillaID == id {
			out = append(out, res)
		}
	}
	sortByCheckIn(out)
	return out, nil
}

func (r *ReservationRepository) All(ctx context.Context) ([]*domainreservation.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domainreservation.Reservation, 0, len(r.items))
	for _, res := range r.items {
		out = append(out, res)
	}
	sortByCheckIn(out)
	return out, nil
}

func (r *ReservationRepository) Save(ctx context.Context, res *domainreservation.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	res.Version++
	r.items[res.ID] = res
	return nil
}

func sortByCheckIn(rs []*domainreservation.Reservation) {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].Range.CheckIn.Equal(rs[j].Range.CheckIn) {
			return rs[i].ID < rs[j].ID
		}
		return rs[i].Range.CheckIn.Before(rs[j].Range.CheckIn)
	})
}

// SeasonalRepository stores seasonal price rules in memory.
type SeasonalRepository struct {
	mu    sync.RWMutex
	items map[domainseasonal.RuleID]*domainseasonal.Rule
}

func NewSeasonalRepository() *SeasonalRepository {
	return &SeasonalRepository{items: make(map[domainseasonal.RuleID]*domainseasonal.Rule)}
}

func (r *SeasonalRepository) ByVilla(ctx context.Context, id domainvilla.VillaID) ([]*domainseasonal.Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domainseasonal.Rule, 0)
	for _, rule := range r.items {
		if rule.VillaID == id {
			out = append(out, rule)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Season.Start.Before(out[j].Season.Start) })
	return out, nil
}

func (r *SeasonalRepository) Save(ctx context.Context, rule *domainseasonal.Rule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[rule.ID] = rule
	return nil
}

func (r *SeasonalRepository) Delete(ctx context.Context, id domainseasonal.RuleID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domainseasonal.ErrRuleNotFound
	}
	delete(r.items, id)
	return nil
}

var (
	_ domainvilla.Repository       = (*VillaRepository)(nil)
	_ domainreservation.Repository = (*ReservationRepository)(nil)
	_ domainseasonal.Repository    = (*SeasonalRepository)(nil)
)
