package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppState_ShopsFor(t *testing.T) {
	st := NewAppState()
	st.Shops = []Shop{
		{ID: "s1", Name: "Kiosk A"},
		{ID: "s2", Name: "Kiosk B", PartnerName: "acme"},
		{ID: "s3", Name: "Kiosk C", PartnerName: "globex"},
	}
	st.Assignments = []UserAssignment{
		{Username: "bob", ShopIDs: []string{"s1"}, PartnerNames: []string{"globex"}},
	}

	scoped := st.ShopsFor("bob", RoleCollector)
	assert.Len(t, scoped, 2)
	assert.Equal(t, "s1", scoped[0].ID)
	assert.Equal(t, "s3", scoped[1].ID)

	// Admins and unassigned collectors see everything.
	assert.Len(t, st.ShopsFor("bob", RoleAdmin), 3)
	assert.Len(t, st.ShopsFor("carol", RoleCollector), 3)
}

func TestAppState_ShopByID(t *testing.T) {
	st := NewAppState()
	st.Shops = []Shop{{ID: "s1", Name: "Kiosk A"}}

	assert.Equal(t, "Kiosk A", st.ShopByID("s1").Name)
	assert.Nil(t, st.ShopByID("missing"))
}
