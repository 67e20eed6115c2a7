/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/identity-cohort-sync/internal/cohort/model"
	profilemodel "github.com/wso2/identity-cohort-sync/internal/profile/model"
	rulesmodel "github.com/wso2/identity-cohort-sync/internal/rules/model"
	"github.com/wso2/identity-cohort-sync/internal/system/constants"
)

// fakeCohortStore is an in-memory CohortStoreInterface for reconciler tests.
type fakeCohortStore struct {
	cohorts     []model.Cohort
	memberships map[string]map[string]bool // cohortID -> userID -> member
	creates     int
	addCalls    int
	joinErrFor  string // cohortID whose membership checks fail
}

func newFakeCohortStore(cohorts ...model.Cohort) *fakeCohortStore {

	return &fakeCohortStore{
		cohorts:     cohorts,
		memberships: make(map[string]map[string]bool),
	}
}

func (fs *fakeCohortStore) ListCohorts(contextID int, component string) ([]model.Cohort, error) {

	var out []model.Cohort
	for _, cohort := range fs.cohorts {
		if cohort.ContextID != contextID {
			continue
		}
		if component != "" && cohort.Component != component {
			continue
		}
		out = append(out, cohort)
	}
	return out, nil
}

func (fs *fakeCohortStore) CreateCohort(cohort model.Cohort) error {

	fs.creates++
	fs.cohorts = append(fs.cohorts, cohort)
	return nil
}

func (fs *fakeCohortStore) AddMembership(cohortID, userID string, addedAt int64) error {

	fs.addCalls++
	if fs.memberships[cohortID] == nil {
		fs.memberships[cohortID] = make(map[string]bool)
	}
	fs.memberships[cohortID][userID] = true
	return nil
}

func (fs *fakeCohortStore) RemoveMembership(cohortID, userID string) error {

	delete(fs.memberships[cohortID], userID)
	return nil
}

func (fs *fakeCohortStore) IsMember(cohortID, userID string) (bool, error) {

	if cohortID == fs.joinErrFor {
		return false, errors.New("membership lookup failed")
	}
	return fs.memberships[cohortID][userID], nil
}

func (fs *fakeCohortStore) GetManagedMemberships(userID, component string) ([]model.Cohort, error) {

	var out []model.Cohort
	for _, cohort := range fs.cohorts {
		if cohort.Component != component {
			continue
		}
		if fs.memberships[cohort.CohortID][userID] {
			out = append(out, cohort)
		}
	}
	return out, nil
}

func (fs *fakeCohortStore) byName(name string) (model.Cohort, bool) {

	for _, cohort := range fs.cohorts {
		if cohort.Name == name {
			return cohort, true
		}
	}
	return model.Cohort{}, false
}

func testUser() *profilemodel.User {

	return &profilemodel.User{
		UserID:   "u-100",
		Username: "alice",
		Email:    "alice@example.com",
	}
}

func TestReconcileJoinsExistingCohortWithoutDuplicate(t *testing.T) {

	existing := model.Cohort{
		CohortID:  "c-1",
		Name:      "dept-Sales",
		ContextID: constants.SystemContextID,
	}
	fs := newFakeCohortStore(existing)
	rs := NewReconcilerService(fs)

	result := rs.Reconcile(testUser(), []string{"dept-Sales"}, rulesmodel.DefaultRuleConfiguration())

	assert.False(t, result.Skipped)
	assert.Equal(t, 0, fs.creates)
	assert.Equal(t, []string{"c-1"}, result.Joined)
	assert.True(t, fs.memberships["c-1"]["u-100"])
}

func TestReconcileCreatesUnseenNameOnce(t *testing.T) {

	fs := newFakeCohortStore()
	rs := NewReconcilerService(fs)

	// Two templates rendering the same unseen name within one run.
	result := rs.Reconcile(testUser(), []string{"tag-go", "tag-go"}, rulesmodel.DefaultRuleConfiguration())

	assert.Equal(t, 1, fs.creates)
	require.Len(t, result.Created, 1)
	assert.Len(t, result.Joined, 1)
	assert.Len(t, result.Processed, 1)

	created, found := fs.byName("tag-go")
	require.True(t, found)
	assert.Equal(t, constants.SystemContextID, created.ContextID)
	// Without unenrol the cohort is left unmanaged.
	assert.Empty(t, created.Component)
}

func TestReconcileCreatedCohortIsManagedWhenUnenrolEnabled(t *testing.T) {

	fs := newFakeCohortStore()
	rs := NewReconcilerService(fs)
	config := rulesmodel.DefaultRuleConfiguration()
	config.EnableUnenrol = true

	rs.Reconcile(testUser(), []string{"dept-Sales"}, config)

	created, found := fs.byName("dept-Sales")
	require.True(t, found)
	assert.Equal(t, constants.ManagedComponent, created.Component)
}

func TestReconcileJoinIsIdempotent(t *testing.T) {

	existing := model.Cohort{
		CohortID:  "c-1",
		Name:      "dept-Sales",
		ContextID: constants.SystemContextID,
	}
	fs := newFakeCohortStore(existing)
	fs.memberships["c-1"] = map[string]bool{"u-100": true}
	rs := NewReconcilerService(fs)

	result := rs.Reconcile(testUser(), []string{"dept-Sales"}, rulesmodel.DefaultRuleConfiguration())

	// Already a member: no insert issued, but the run still records the join.
	assert.Equal(t, 0, fs.addCalls)
	assert.Equal(t, []string{"c-1"}, result.Joined)
}

func TestReconcilePrunesStaleManagedMemberships(t *testing.T) {

	managed := model.Cohort{
		CohortID:  "c-old",
		Name:      "dept-Marketing",
		ContextID: constants.SystemContextID,
		Component: constants.ManagedComponent,
	}
	unmanaged := model.Cohort{
		CohortID:  "c-manual",
		Name:      "book-club",
		ContextID: constants.SystemContextID,
	}
	fs := newFakeCohortStore(managed, unmanaged)
	fs.memberships["c-old"] = map[string]bool{"u-100": true}
	fs.memberships["c-manual"] = map[string]bool{"u-100": true}
	rs := NewReconcilerService(fs)
	config := rulesmodel.DefaultRuleConfiguration()
	config.EnableUnenrol = true

	result := rs.Reconcile(testUser(), []string{"dept-Sales"}, config)

	assert.Equal(t, []string{"c-old"}, result.Removed)
	assert.False(t, fs.memberships["c-old"]["u-100"])
	// Memberships in unmanaged cohorts are never touched.
	assert.True(t, fs.memberships["c-manual"]["u-100"])
}

func TestReconcileKeepsStillMatchingManagedMembership(t *testing.T) {

	managed := model.Cohort{
		CohortID:  "c-1",
		Name:      "dept-Sales",
		ContextID: constants.SystemContextID,
		Component: constants.ManagedComponent,
	}
	fs := newFakeCohortStore(managed)
	fs.memberships["c-1"] = map[string]bool{"u-100": true}
	rs := NewReconcilerService(fs)
	config := rulesmodel.DefaultRuleConfiguration()
	config.EnableUnenrol = true

	result := rs.Reconcile(testUser(), []string{"dept-Sales"}, config)

	assert.Empty(t, result.Removed)
	assert.True(t, fs.memberships["c-1"]["u-100"])
}

func TestReconcileUnenrolIgnoresUnmanagedNameMatch(t *testing.T) {

	// With unenrol enabled an unmanaged cohort with a matching name is not
	// a candidate; a managed twin gets created instead.
	unmanaged := model.Cohort{
		CohortID:  "c-manual",
		Name:      "dept-Sales",
		ContextID: constants.SystemContextID,
	}
	fs := newFakeCohortStore(unmanaged)
	rs := NewReconcilerService(fs)
	config := rulesmodel.DefaultRuleConfiguration()
	config.EnableUnenrol = true

	result := rs.Reconcile(testUser(), []string{"dept-Sales"}, config)

	assert.Equal(t, 1, fs.creates)
	require.Len(t, result.Created, 1)
	assert.NotEqual(t, "c-manual", result.Created[0])
}

func TestReconcileSkipsProtectedUsers(t *testing.T) {

	tests := []struct {
		name   string
		user   *profilemodel.User
		config rulesmodel.RuleConfiguration
	}{
		{
			name: "guest user",
			user: &profilemodel.User{UserID: "u-1", Username: constants.GuestUsername},
		},
		{
			name: "deleted user",
			user: &profilemodel.User{UserID: "u-2", Username: "bob", Deleted: true},
		},
		{
			name: "suspended user",
			user: &profilemodel.User{UserID: "u-4", Username: "mallory", Suspended: true},
		},
		{
			name: "denylisted user",
			user: &profilemodel.User{UserID: "u-3", Username: "carol"},
			config: rulesmodel.RuleConfiguration{
				DontTouchUsers: "carol, dave",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := newFakeCohortStore()
			rs := NewReconcilerService(fs)

			result := rs.Reconcile(tc.user, []string{"dept-Sales"}, tc.config)

			assert.True(t, result.Skipped)
			assert.Equal(t, 0, fs.creates)
			assert.Empty(t, result.Joined)
		})
	}
}

func TestReconcileJoinFailureDoesNotPruneMembership(t *testing.T) {

	managed := model.Cohort{
		CohortID:  "c-1",
		Name:      "dept-Sales",
		ContextID: constants.SystemContextID,
		Component: constants.ManagedComponent,
	}
	fs := newFakeCohortStore(managed)
	fs.memberships["c-1"] = map[string]bool{"u-100": true}
	fs.joinErrFor = "c-1"
	rs := NewReconcilerService(fs)
	config := rulesmodel.DefaultRuleConfiguration()
	config.EnableUnenrol = true

	result := rs.Reconcile(testUser(), []string{"dept-Sales"}, config)

	// The user still qualifies for the cohort; a storage blip during the
	// join must not turn into an unenrolment.
	assert.Empty(t, result.Joined)
	assert.Equal(t, []string{"c-1"}, result.Processed)
	assert.Empty(t, result.Removed)
	assert.True(t, fs.memberships["c-1"]["u-100"])
}

func TestReconcileIgnoresEmptyNames(t *testing.T) {

	fs := newFakeCohortStore()
	rs := NewReconcilerService(fs)

	result := rs.Reconcile(testUser(), []string{"", "", "dept-Sales"}, rulesmodel.DefaultRuleConfiguration())

	assert.Equal(t, 1, fs.creates)
	assert.Len(t, result.Joined, 1)
}
