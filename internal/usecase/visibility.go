package usecase

// FriendSet is a membership structure over user ids. Feed queries and
// visibility checks both consult it; lookups stay O(1) regardless of how
// large a friend list grows.
type FriendSet map[string]struct{}

func NewFriendSet(ids ...string) FriendSet {
	set := make(FriendSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s FriendSet) Add(id string) {
	s[id] = struct{}{}
}

func (s FriendSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

func (s FriendSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}

// IsVisible reports whether content owned by owner may be seen by viewer:
// the viewer's own content and content of the viewer's friends. Pure, no
// side effects.
func IsVisible(viewer, owner string, friends FriendSet) bool {
	return owner == viewer || friends.Contains(owner)
}
