/*
 * Copyright 2025 StatusBridge Contributors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sync

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/statusbridge/statusbridge/pkg/logger"
	"github.com/statusbridge/statusbridge/pkg/models"
)

func newTestEngine(t *testing.T, allowDelete bool) (*Engine, *MockStateFetcher, *MockMutator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	fetcher := NewMockStateFetcher(ctrl)
	mutator := NewMockMutator(ctrl)

	return NewEngine(fetcher, mutator, allowDelete, nil, logger.NewTestLogger()), fetcher, mutator
}

func regionAHierarchy() []models.Service {
	return []models.Service{
		{ID: "1", Name: "API", Status: models.ServiceStatusOperational, Role: models.RoleStandalone},
		{ID: "2", Name: "Region A", Status: models.ServiceStatusHigh, Role: models.RoleGroup},
		{ID: "3", Name: "DB", Status: models.ServiceStatusHigh, Role: models.RoleGroupChild, ParentGroupID: "2"},
	}
}

func TestEngineCreatesMissingComponentsAndSkipsGroupSync(t *testing.T) {
	engine, fetcher, mutator := newTestEngine(t, false)

	fetcher.EXPECT().Components(gomock.Any()).Return(nil, nil)
	mutator.EXPECT().CreateComponent(gomock.Any(), "API").Return(nil)
	mutator.EXPECT().CreateComponent(gomock.Any(), "DB").Return(nil)
	// No ComponentGroups expectation: group sync must not run in a pass
	// that changed components.

	changed, err := engine.Reconcile(context.Background(), regionAHierarchy())

	require.NoError(t, err)
	assert.True(t, changed)
}

func TestEngineUpdatesMismatchedStatus(t *testing.T) {
	engine, fetcher, mutator := newTestEngine(t, false)

	fetcher.EXPECT().Components(gomock.Any()).Return([]*models.Component{
		{ID: "c1", Name: "API", Status: models.ComponentStatusPartialOutage},
	}, nil)
	mutator.EXPECT().UpdateComponentStatus(gomock.Any(), "c1", models.ComponentStatusOperational).Return(nil)
	mutator.EXPECT().CreateComponent(gomock.Any(), "DB").Return(nil)

	changed, err := engine.Reconcile(context.Background(), regionAHierarchy())

	require.NoError(t, err)
	assert.True(t, changed)
}

func TestEngineStatusUpdateAloneDoesNotGateGroupSync(t *testing.T) {
	engine, fetcher, mutator := newTestEngine(t, false)

	services := []models.Service{
		{ID: "1", Name: "API", Status: models.ServiceStatusWarning, Role: models.RoleStandalone},
	}

	fetcher.EXPECT().Components(gomock.Any()).Return([]*models.Component{
		{ID: "c1", Name: "API", Status: models.ComponentStatusOperational},
	}, nil)
	mutator.EXPECT().UpdateComponentStatus(gomock.Any(), "c1", models.ComponentStatusDegradedPerformance).Return(nil)
	fetcher.EXPECT().ComponentGroups(gomock.Any()).Return(nil, nil)

	changed, err := engine.Reconcile(context.Background(), services)

	require.NoError(t, err)
	assert.False(t, changed)
}

func TestEngineDeletesStrayComponentWhenPermitted(t *testing.T) {
	engine, fetcher, mutator := newTestEngine(t, true)

	services := []models.Service{
		{ID: "1", Name: "API", Status: models.ServiceStatusOperational, Role: models.RoleStandalone},
	}

	fetcher.EXPECT().Components(gomock.Any()).Return([]*models.Component{
		{ID: "c1", Name: "API", Status: models.ComponentStatusOperational},
		{ID: "c2", Name: "Legacy", Status: models.ComponentStatusOperational},
	}, nil)
	mutator.EXPECT().DeleteComponent(gomock.Any(), "c2").Return(nil)

	changed, err := engine.Reconcile(context.Background(), services)

	require.NoError(t, err)
	assert.True(t, changed)
}

func TestEngineNeverDeletesWhenDisabled(t *testing.T) {
	engine, fetcher, _ := newTestEngine(t, false)

	services := []models.Service{
		{ID: "1", Name: "API", Status: models.ServiceStatusOperational, Role: models.RoleStandalone},
	}

	fetcher.EXPECT().Components(gomock.Any()).Return([]*models.Component{
		{ID: "c1", Name: "API", Status: models.ComponentStatusOperational},
		{ID: "c2", Name: "Legacy", Status: models.ComponentStatusOperational},
	}, nil).Times(2)
	fetcher.EXPECT().ComponentGroups(gomock.Any()).Return(nil, nil).Times(2)

	// No delete regardless of how many passes run.
	for i := 0; i < 2; i++ {
		changed, err := engine.Reconcile(context.Background(), services)
		require.NoError(t, err)
		assert.False(t, changed)
	}
}

func TestEngineNeverDeletesGroupMembers(t *testing.T) {
	engine, fetcher, _ := newTestEngine(t, true)

	fetcher.EXPECT().Components(gomock.Any()).Return([]*models.Component{
		{ID: "c1", Name: "Orphan", Status: models.ComponentStatusOperational, GroupMember: true},
	}, nil)
	fetcher.EXPECT().ComponentGroups(gomock.Any()).Return(nil, nil)

	changed, err := engine.Reconcile(context.Background(), nil)

	require.NoError(t, err)
	assert.False(t, changed)
}

func TestEngineIdempotentOnConvergedTarget(t *testing.T) {
	engine, fetcher, _ := newTestEngine(t, true)

	fetcher.EXPECT().Components(gomock.Any()).Return([]*models.Component{
		{ID: "c1", Name: "API", Status: models.ComponentStatusOperational},
		{ID: "c2", Name: "DB", Status: models.ComponentStatusMajorOutage, GroupMember: true},
	}, nil)
	fetcher.EXPECT().ComponentGroups(gomock.Any()).Return([]*models.ComponentGroup{
		{ID: "g1", Name: "Region A", ComponentIDs: []string{"c2"}},
	}, nil)

	changed, err := engine.Reconcile(context.Background(), regionAHierarchy())

	require.NoError(t, err)
	assert.False(t, changed)
}

func TestEngineCreatesMissingGroup(t *testing.T) {
	engine, fetcher, mutator := newTestEngine(t, false)

	fetcher.EXPECT().Components(gomock.Any()).Return([]*models.Component{
		{ID: "c1", Name: "API", Status: models.ComponentStatusOperational},
		{ID: "c2", Name: "DB", Status: models.ComponentStatusMajorOutage},
	}, nil)
	fetcher.EXPECT().ComponentGroups(gomock.Any()).Return(nil, nil)
	mutator.EXPECT().CreateComponentGroup(gomock.Any(), "Region A", []string{"c2"}).Return(nil)

	changed, err := engine.Reconcile(context.Background(), regionAHierarchy())

	require.NoError(t, err)
	assert.False(t, changed)
}

func TestEngineReplacesGroupMembershipWholesale(t *testing.T) {
	engine, fetcher, mutator := newTestEngine(t, false)

	services := []models.Service{
		{ID: "10", Name: "Region A", Status: models.ServiceStatusOperational, Role: models.RoleGroup},
		{ID: "11", Name: "X", Status: models.ServiceStatusOperational, Role: models.RoleGroupChild, ParentGroupID: "10"},
		{ID: "12", Name: "Y", Status: models.ServiceStatusOperational, Role: models.RoleGroupChild, ParentGroupID: "10"},
	}

	fetcher.EXPECT().Components(gomock.Any()).Return([]*models.Component{
		{ID: "x1", Name: "X", Status: models.ComponentStatusOperational, GroupMember: true},
		{ID: "y1", Name: "Y", Status: models.ComponentStatusOperational, GroupMember: true},
	}, nil)
	fetcher.EXPECT().ComponentGroups(gomock.Any()).Return([]*models.ComponentGroup{
		{ID: "g1", Name: "Region A", ComponentIDs: []string{"x1"}},
	}, nil)
	mutator.EXPECT().UpdateComponentGroupMembers(gomock.Any(), "g1", []string{"x1", "y1"}).Return(nil)

	changed, err := engine.Reconcile(context.Background(), services)

	require.NoError(t, err)
	assert.False(t, changed)
}

func TestEngineGroupMembershipIgnoresOrder(t *testing.T) {
	engine, fetcher, _ := newTestEngine(t, false)

	services := []models.Service{
		{ID: "10", Name: "Region A", Status: models.ServiceStatusOperational, Role: models.RoleGroup},
		{ID: "11", Name: "X", Status: models.ServiceStatusOperational, Role: models.RoleGroupChild, ParentGroupID: "10"},
		{ID: "12", Name: "Y", Status: models.ServiceStatusOperational, Role: models.RoleGroupChild, ParentGroupID: "10"},
	}

	fetcher.EXPECT().Components(gomock.Any()).Return([]*models.Component{
		{ID: "x1", Name: "X", Status: models.ComponentStatusOperational, GroupMember: true},
		{ID: "y1", Name: "Y", Status: models.ComponentStatusOperational, GroupMember: true},
	}, nil)
	fetcher.EXPECT().ComponentGroups(gomock.Any()).Return([]*models.ComponentGroup{
		{ID: "g1", Name: "Region A", ComponentIDs: []string{"y1", "x1"}},
	}, nil)

	changed, err := engine.Reconcile(context.Background(), services)

	require.NoError(t, err)
	assert.False(t, changed)
}

func TestExpectedMembersOmitsUnresolvedChildren(t *testing.T) {
	engine, _, _ := newTestEngine(t, false)

	services := []models.Service{
		{ID: "10", Name: "Region A", Status: models.ServiceStatusOperational, Role: models.RoleGroup},
		{ID: "11", Name: "X", Status: models.ServiceStatusOperational, Role: models.RoleGroupChild, ParentGroupID: "10"},
		{ID: "12", Name: "Z", Status: models.ServiceStatusOperational, Role: models.RoleGroupChild, ParentGroupID: "10"},
	}
	components := []*models.Component{
		{ID: "x1", Name: "X", Status: models.ComponentStatusOperational, GroupMember: true},
	}

	ids, err := engine.expectedMembers(services, components, "10")

	require.NoError(t, err)
	assert.Equal(t, []string{"x1"}, ids)
}

func TestEngineAmbiguousComponentName(t *testing.T) {
	engine, fetcher, _ := newTestEngine(t, false)

	services := []models.Service{
		{ID: "1", Name: "API", Status: models.ServiceStatusOperational, Role: models.RoleStandalone},
	}

	fetcher.EXPECT().Components(gomock.Any()).Return([]*models.Component{
		{ID: "c1", Name: "API", Status: models.ComponentStatusOperational},
		{ID: "c2", Name: "API", Status: models.ComponentStatusMajorOutage},
	}, nil)

	_, err := engine.Reconcile(context.Background(), services)

	require.ErrorIs(t, err, ErrAmbiguousNameMatch)
}

func TestEngineMatchingIsCaseSensitive(t *testing.T) {
	engine, fetcher, mutator := newTestEngine(t, false)

	services := []models.Service{
		{ID: "1", Name: "API", Status: models.ServiceStatusOperational, Role: models.RoleStandalone},
	}

	fetcher.EXPECT().Components(gomock.Any()).Return([]*models.Component{
		{ID: "c1", Name: "api", Status: models.ComponentStatusOperational},
	}, nil)
	mutator.EXPECT().CreateComponent(gomock.Any(), "API").Return(nil)

	changed, err := engine.Reconcile(context.Background(), services)

	require.NoError(t, err)
	assert.True(t, changed)
}

func TestEngineAbortsPassOnMutationFailure(t *testing.T) {
	engine, fetcher, mutator := newTestEngine(t, false)

	errBoom := errors.New("boom")

	fetcher.EXPECT().Components(gomock.Any()).Return(nil, nil)
	mutator.EXPECT().CreateComponent(gomock.Any(), "API").Return(errBoom)
	// DB is never attempted; the pass aborts on the first failure.

	_, err := engine.Reconcile(context.Background(), regionAHierarchy())

	require.ErrorIs(t, err, errBoom)
}

func TestEngineFetchFailureFailsPass(t *testing.T) {
	engine, fetcher, _ := newTestEngine(t, false)

	errBoom := errors.New("boom")

	fetcher.EXPECT().Components(gomock.Any()).Return(nil, errBoom)

	_, err := engine.Reconcile(context.Background(), regionAHierarchy())

	require.ErrorIs(t, err, errBoom)
}
