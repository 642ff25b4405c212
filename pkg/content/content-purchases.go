package content

import "github.com/silktrader/statuary/pkg/ntime"

// CreatePurchase records a completed tour purchase and reports false, storing nothing, when the user already owns
// the tour. The check and the insert share the lock, so concurrent duplicates can't slip through.
func (s *Store) CreatePurchase(data NewPurchase) (Purchase, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.purchaseIndex(data.UserId, data.TourId) >= 0 {
		return Purchase{}, false
	}

	var purchase = Purchase{
		PurchaseId: s.ids.New("payment"),
		TourId:     data.TourId,
		UserId:     data.UserId,
		Amount:     data.Amount,
		Status:     Completed,
		CreatedAt:  ntime.From(s.clock.Now()),
	}
	s.purchases = append(s.purchases, purchase)
	return purchase, true
}

func (s *Store) PurchasesByUser(userId string) []Purchase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.purchases, func(p Purchase) bool { return p.UserId == userId })
}

func (s *Store) HasPurchased(userId, tourId string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.purchaseIndex(userId, tourId) >= 0
}

func (s *Store) purchaseIndex(userId, tourId string) int {
	return indexOf(s.purchases, func(p Purchase) bool { return p.UserId == userId && p.TourId == tourId })
}
