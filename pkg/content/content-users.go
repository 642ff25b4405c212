package content

import "github.com/silktrader/statuary/pkg/ntime"

// CreateUser stores a new user. Farcaster id uniqueness is the caller's concern.
func (s *Store) CreateUser(data NewUser) User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertUser(data)
}

func (s *Store) insertUser(data NewUser) User {
	var user = User{
		UserId:        s.ids.New("user"),
		FarcasterId:   data.FarcasterId,
		WalletAddress: data.WalletAddress,
		Username:      data.Username,
		Avatar:        data.Avatar,
		CreatedAt:     ntime.From(s.clock.Now()),
	}
	s.users = append(s.users, user)
	return user
}

// CreateUserUnique stores a new user unless another one already holds the same Farcaster id, in which case it
// reports false and stores nothing. Users without a Farcaster id never clash.
func (s *Store) CreateUserUnique(data NewUser) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.farcasterIndex(data.FarcasterId) >= 0 {
		return User{}, false
	}
	return s.insertUser(data), true
}

/*
SignIn registers the user behind a Farcaster id, or refreshes the existing one: non-empty username, wallet and
avatar replace the stored values. New users lacking a username get a placeholder derived from the Farcaster id.
It reports true when a user was created. Lookup and write share the lock, so
concurrent sign-ins with the same id yield a single user.
*/
func (s *Store) SignIn(data NewUser) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var i = s.farcasterIndex(data.FarcasterId)
	if i < 0 {
		if data.Username == "" {
			data.Username = "fc" + data.FarcasterId
		}
		return s.insertUser(data), true
	}
	var user = &s.users[i]
	if data.Username != "" {
		user.Username = data.Username
	}
	if data.WalletAddress != "" {
		user.WalletAddress = data.WalletAddress
	}
	if data.Avatar != "" {
		user.Avatar = data.Avatar
	}
	return *user, false
}

func (s *Store) Users() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]User, 0, len(s.users)), s.users...)
}

func (s *Store) User(userId string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.userIndex(userId); i >= 0 {
		return s.users[i], true
	}
	return User{}, false
}

// UserByFarcasterID returns the first user registered with the given Farcaster id. Empty ids never match.
func (s *Store) UserByFarcasterID(farcasterId string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.farcasterIndex(farcasterId); i >= 0 {
		return s.users[i], true
	}
	return User{}, false
}

func (s *Store) UpdateUser(userId string, update UserUpdate) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var i = s.userIndex(userId)
	if i < 0 {
		return User{}, false
	}
	var user = &s.users[i]
	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.WalletAddress != nil {
		user.WalletAddress = *update.WalletAddress
	}
	if update.Avatar != nil {
		user.Avatar = *update.Avatar
	}
	return *user, true
}

func (s *Store) userIndex(userId string) int {
	return indexOf(s.users, func(u User) bool { return u.UserId == userId })
}

// farcasterIndex finds the user holding a Farcaster id; empty ids never match.
func (s *Store) farcasterIndex(farcasterId string) int {
	if farcasterId == "" {
		return -1
	}
	return indexOf(s.users, func(u User) bool { return u.FarcasterId == farcasterId })
}
