package services

import (
	"encoding/json"
	"sync"
	"time"

	"glowbook-backend/models"
	"glowbook-backend/store"
)

// WizardService holds the in-progress booking selection across the salon →
// service → date → slot steps. Each slot persists under its own store key
// the moment it is set and is removed when cleared, so a restart resumes
// where the user left off. The service stores whatever it is given; routing
// users through the steps in order is the presentation layer's job.
type WizardService struct {
	mu      sync.Mutex
	store   *store.Store
	salon   *models.Salon
	service *models.Service
	date    *time.Time
	slot    *string
}

// Selection is a read snapshot of the wizard state.
type Selection struct {
	Salon   *models.Salon   `json:"selectedSalon"`
	Service *models.Service `json:"selectedService"`
	Date    *time.Time      `json:"selectedDate"`
	Slot    *string         `json:"selectedSlot"`
}

// NewWizardService rehydrates any persisted slots.
func NewWizardService(st *store.Store) *WizardService {
	w := &WizardService{store: st}

	if raw, ok := st.Get(store.KeySelectedSalon); ok {
		var salon models.Salon
		if err := json.Unmarshal([]byte(raw), &salon); err == nil {
			w.salon = &salon
		}
	}
	if raw, ok := st.Get(store.KeySelectedService); ok {
		var service models.Service
		if err := json.Unmarshal([]byte(raw), &service); err == nil {
			w.service = &service
		}
	}
	if raw, ok := st.Get(store.KeySelectedDate); ok {
		if date, err := time.Parse(time.RFC3339, raw); err == nil {
			w.date = &date
		}
	}
	if raw, ok := st.Get(store.KeySelectedSlot); ok {
		w.slot = &raw
	}

	return w
}

func (w *WizardService) SetSelectedSalon(salon *models.Salon) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.salon = salon
	if salon == nil {
		w.store.Delete(store.KeySelectedSalon)
		return
	}
	if raw, err := json.Marshal(salon); err == nil {
		w.store.Set(store.KeySelectedSalon, string(raw))
	}
}

func (w *WizardService) SetSelectedService(service *models.Service) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.service = service
	if service == nil {
		w.store.Delete(store.KeySelectedService)
		return
	}
	if raw, err := json.Marshal(service); err == nil {
		w.store.Set(store.KeySelectedService, string(raw))
	}
}

func (w *WizardService) SetSelectedDate(date *time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.date = date
	if date == nil {
		w.store.Delete(store.KeySelectedDate)
		return
	}
	w.store.Set(store.KeySelectedDate, date.Format(time.RFC3339))
}

func (w *WizardService) SetSelectedSlot(slot *string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.slot = slot
	if slot == nil {
		w.store.Delete(store.KeySelectedSlot)
		return
	}
	w.store.Set(store.KeySelectedSlot, *slot)
}

// ResetBooking clears all four slots and their persisted keys. Callers
// never observe a partially reset selection.
func (w *WizardService) ResetBooking() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.salon = nil
	w.service = nil
	w.date = nil
	w.slot = nil
	w.store.Delete(store.KeySelectedSalon)
	w.store.Delete(store.KeySelectedService)
	w.store.Delete(store.KeySelectedDate)
	w.store.Delete(store.KeySelectedSlot)
}

// Selection returns a snapshot of the current state.
func (w *WizardService) Selection() Selection {
	w.mu.Lock()
	defer w.mu.Unlock()

	return Selection{Salon: w.salon, Service: w.service, Date: w.date, Slot: w.slot}
}

// Complete reports whether every step has been chosen.
func (w *WizardService) Complete() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.salon != nil && w.service != nil && w.date != nil && w.slot != nil
}
