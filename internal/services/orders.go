package services

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mdjobayerdream-BD/JioFFtopup/internal/metrics"
	"github.com/mdjobayerdream-BD/JioFFtopup/internal/models"
)

// Orders owns purchase requests. A wallet-paid order debits the balance at
// creation time and never again; a direct-payment order carries proof fields
// instead and never moves the ledger at all.
type Orders struct {
	store *Store
	bus   *UpdateBus
}

func NewOrders(store *Store, bus *UpdateBus) *Orders {
	return &Orders{store: store, bus: bus}
}

func (o *Orders) Create(uid string, req *models.OrderRequest) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	o.store.Lock()
	defer o.store.Unlock()

	users := o.store.Users()
	idx := -1
	for i := range users {
		if users[i].UID == uid {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrUserNotFound
	}
	user := &users[idx]

	if req.PaymentMethod == models.PaymentWallet {
		// The check and the debit run under the same store lock, so a failed
		// check leaves nothing to roll back.
		if user.Balance < req.Amount {
			return nil, ErrInsufficientBalance
		}
		user.Balance -= req.Amount
		o.store.SaveUsers(users)
		o.bus.Publish(uid)
	} else {
		if req.TrxID == "" {
			return nil, ErrMissingTrxID
		}
		if req.SenderNumber == "" && req.PaymentMethod != models.PaymentBinance {
			return nil, ErrMissingSenderNumber
		}
	}

	order := models.Order{
		ID:             models.GenerateOrderID(),
		UserID:         user.ID,
		UserUID:        uid,
		CategoryID:     req.CategoryID,
		PackageDetails: req.PackageDetails,
		Amount:         req.Amount,
		BasePrice:      req.BasePrice,
		Tax:            req.Tax,
		PaymentMethod:  req.PaymentMethod,
		TrxID:          req.TrxID,
		SenderNumber:   req.SenderNumber,
		Status:         models.OrderStatusPending,
		Date:           models.Timestamp(time.Now()),
		TargetPlayerID: req.TargetPlayerID,
		TargetName:     req.TargetName,
	}

	orders := o.store.Orders()
	orders = append([]models.Order{order}, orders...)
	o.store.SaveOrders(orders)

	metrics.OrdersCreated.WithLabelValues(string(req.PaymentMethod)).Inc()

	return &order, nil
}

// List returns every order, newest first.
func (o *Orders) List() []models.Order {
	return o.store.Orders()
}

func (o *Orders) ListForUser(uid string) []models.Order {
	var out []models.Order
	for _, ord := range o.store.Orders() {
		if ord.UserUID == uid {
			out = append(out, ord)
		}
	}
	return out
}

// Recent returns up to limit of the newest orders, for the live feed.
func (o *Orders) Recent(limit int) []models.Order {
	orders := o.store.Orders()
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders
}

// SetStatus overwrites an order's status. Unlike deposit resolution there is
// never a balance side effect here: wallet debits already happened at
// creation, and direct-payment money changed hands outside the system. An
// unknown id is ignored.
func (o *Orders) SetStatus(id string, status models.OrderStatus) {
	o.store.Lock()
	defer o.store.Unlock()

	orders := o.store.Orders()
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			o.store.SaveOrders(orders)
			return
		}
	}

	metrics.StatusUpdateMisses.WithLabelValues("order").Inc()
	logrus.Warnf("orders: status update for unknown id %s ignored", id)
}
