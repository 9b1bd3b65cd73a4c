package services

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mdjobayerdream-BD/JioFFtopup/internal/config"
	"github.com/mdjobayerdream-BD/JioFFtopup/internal/models"
)

// Ledger owns user accounts: login-or-register, session resolution, and the
// daily reward streak. There is no separate signup; any never-seen uid plus
// any password creates an account.
type Ledger struct {
	store    *Store
	bus      *UpdateBus
	adminUID string
}

func NewLedger(store *Store, bus *UpdateBus, cfg *config.Config) *Ledger {
	return &Ledger{
		store:    store,
		bus:      bus,
		adminUID: cfg.AdminUID,
	}
}

// LoginOrRegister authenticates uid, creating the account on first sight.
// An existing account with a different bound password fails; an existing
// account that predates passwords binds the supplied one and succeeds. The
// returned session id identifies the login for later CurrentUser calls.
func (l *Ledger) LoginOrRegister(uid, password string) (*models.User, string, error) {
	l.store.Lock()
	defer l.store.Unlock()

	users := l.store.Users()

	var user *models.User
	for i := range users {
		if users[i].UID == uid {
			user = &users[i]
			break
		}
	}

	if user != nil {
		if user.Password != "" && user.Password != password {
			return nil, "", ErrIncorrectPassword
		}
		if user.Password == "" {
			// Legacy account from before passwords existed: bind now.
			user.Password = password
			l.store.SaveUsers(users)
		}
	} else {
		role := models.RoleUser
		if uid == l.adminUID {
			role = models.RoleAdmin
		}
		user = models.NewUser(uid, password, role)
		users = append(users, *user)
		l.store.SaveUsers(users)
		logrus.Infof("ledger: registered new %s account for uid %s", role, uid)
	}

	session := &models.UserSession{
		UID:          uid,
		SessionID:    models.GenerateSessionID(),
		CreatedAt:    time.Now().Unix(),
		LastAccessed: time.Now().Unix(),
	}
	if err := l.store.StoreSession(session); err != nil {
		return nil, "", fmt.Errorf("failed to store session: %v", err)
	}

	return user, session.SessionID, nil
}

// Logout drops the session record only; account data is untouched.
func (l *Ledger) Logout(uid, sessionID string) error {
	return l.store.DeleteSession(uid, sessionID)
}

// CurrentUser resolves a session to its account, or nil when either the
// session or the account is gone.
func (l *Ledger) CurrentUser(uid, sessionID string) *models.User {
	if _, err := l.store.GetSession(uid, sessionID); err != nil {
		return nil
	}
	return l.FindUser(uid)
}

// FindUser looks up an account by uid with a fresh collection read.
func (l *Ledger) FindUser(uid string) *models.User {
	for _, u := range l.store.Users() {
		if u.UID == uid {
			user := u
			return &user
		}
	}
	return nil
}

// ClaimDaily grants one reward token per local calendar day. A claim on the
// day after the previous one extends the streak; any gap resets it to 1.
func (l *Ledger) ClaimDaily(uid string) (string, int64, error) {
	l.store.Lock()
	defer l.store.Unlock()

	users := l.store.Users()
	idx := -1
	for i := range users {
		if users[i].UID == uid {
			idx = i
			break
		}
	}
	if idx == -1 {
		return "", 0, ErrUserNotFound
	}

	user := &users[idx]
	today := models.DateOnly(time.Now())

	if user.LastClaimDate == today {
		return "", 0, ErrAlreadyClaimed
	}

	yesterday := models.DateOnly(time.Now().AddDate(0, 0, -1))
	if user.LastClaimDate == yesterday {
		user.StreakDays++
	} else {
		user.StreakDays = 1
	}

	user.Tokens++
	user.LastClaimDate = today

	l.store.SaveUsers(users)
	l.bus.Publish(uid)

	msg := fmt.Sprintf("Claimed! +1 Token. Streak: %d days", user.StreakDays)
	return msg, user.StreakDays, nil
}
