package services

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mdjobayerdream-BD/JioFFtopup/internal/metrics"
	"github.com/mdjobayerdream-BD/JioFFtopup/internal/models"
)

// Deposits owns deposit requests. Creating one never touches the wallet;
// the credit happens exactly once, on the pending-to-approved transition.
type Deposits struct {
	store *Store
	bus   *UpdateBus
}

func NewDeposits(store *Store, bus *UpdateBus) *Deposits {
	return &Deposits{store: store, bus: bus}
}

// Create records a pending deposit claim. Deposits add money, so there is
// nothing to validate against the wallet; the request is taken at face value
// until an admin resolves it.
func (d *Deposits) Create(uid string, input *models.DepositRequestInput) (*models.DepositRequest, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	d.store.Lock()
	defer d.store.Unlock()

	userID := ""
	for _, u := range d.store.Users() {
		if u.UID == uid {
			userID = u.ID
			break
		}
	}

	deposit := models.DepositRequest{
		ID:      models.GenerateDepositID(),
		UserID:  userID,
		UserUID: uid,
		Amount:  input.Amount,
		Method:  input.Method,
		TrxID:   input.TrxID,
		Status:  models.DepositStatusPending,
		Date:    models.Timestamp(time.Now()),
	}

	deposits := d.store.Deposits()
	deposits = append([]models.DepositRequest{deposit}, deposits...)
	d.store.SaveDeposits(deposits)

	return &deposit, nil
}

// List returns every deposit request, newest first.
func (d *Deposits) List() []models.DepositRequest {
	return d.store.Deposits()
}

func (d *Deposits) ListForUser(uid string) []models.DepositRequest {
	var out []models.DepositRequest
	for _, dep := range d.store.Deposits() {
		if dep.UserUID == uid {
			out = append(out, dep)
		}
	}
	return out
}

// SetStatus resolves a deposit. The wallet is credited only when the stored
// status is still pending and the target is approved; checking the stored
// status is what makes a repeated approve call a no-op for the balance. The
// status field itself is always overwritten. An unknown id is ignored.
func (d *Deposits) SetStatus(id string, status models.DepositStatus) {
	d.store.Lock()
	defer d.store.Unlock()

	deposits := d.store.Deposits()
	idx := -1
	for i := range deposits {
		if deposits[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		metrics.StatusUpdateMisses.WithLabelValues("deposit").Inc()
		logrus.Warnf("deposits: status update for unknown id %s ignored", id)
		return
	}

	deposit := &deposits[idx]

	if deposit.Status == models.DepositStatusPending && status == models.DepositStatusApproved {
		users := d.store.Users()
		for i := range users {
			if users[i].UID == deposit.UserUID {
				users[i].Balance += deposit.Amount
				d.store.SaveUsers(users)
				d.bus.Publish(deposit.UserUID)
				break
			}
		}
	}

	deposit.Status = status
	d.store.SaveDeposits(deposits)

	if status != models.DepositStatusPending {
		metrics.DepositsResolved.WithLabelValues(string(status)).Inc()
	}
}
