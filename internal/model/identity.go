package model

type IdentityKind string

const (
	IdentityUser       IdentityKind = "user"
	IdentityTeamMember IdentityKind = "team_member"
)

// Identity is the resolved form of the mutually exclusive
// userId/teamMemberId pair carried on the protocol boundary.
type Identity struct {
	Kind IdentityKind
	ID   string
}

func (i Identity) IsUser() bool {
	return i.Kind == IdentityUser
}

// IdentityFromIDs resolves the optional id pair into an Identity.
// The user id wins when both are supplied, matching the upstream
// "userId || teamMemberId" resolution order.
func IdentityFromIDs(userID, teamMemberID string) (Identity, bool) {
	if userID != "" {
		return Identity{Kind: IdentityUser, ID: userID}, true
	}
	if teamMemberID != "" {
		return Identity{Kind: IdentityTeamMember, ID: teamMemberID}, true
	}

	return Identity{}, false
}
