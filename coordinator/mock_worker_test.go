package coordinator

// Hand-written in the shape mockgen would produce for worker.Worker,
// grounded on SPEC_FULL.md's ambient test stack: a gomock.Controller
// drives call expectations so the lifecycle/protocol tests (winner
// selection, soundness-fault abort, interrupt idempotence) can
// pin exact call counts without depending on internal/engine's search
// timing.

import (
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/parsat-project/parsat/clause"
	"github.com/parsat-project/parsat/lit"
	"github.com/parsat-project/parsat/worker"
)

type MockWorker struct {
	ctrl     *gomock.Controller
	recorder *MockWorkerMockRecorder
}

type MockWorkerMockRecorder struct {
	mock *MockWorker
}

func NewMockWorker(ctrl *gomock.Controller) *MockWorker {
	m := &MockWorker{ctrl: ctrl}
	m.recorder = &MockWorkerMockRecorder{m}
	return m
}

func (m *MockWorker) EXPECT() *MockWorkerMockRecorder {
	return m.recorder
}

func (m *MockWorker) NVars() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NVars")
	r, _ := ret[0].(int)
	return r
}
func (mr *MockWorkerMockRecorder) NVars() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NVars", reflect.TypeOf((*MockWorker)(nil).NVars))
}

func (m *MockWorker) NClauses() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NClauses")
	r, _ := ret[0].(int)
	return r
}
func (mr *MockWorkerMockRecorder) NClauses() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NClauses", reflect.TypeOf((*MockWorker)(nil).NClauses))
}

func (m *MockWorker) NUnits() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NUnits")
	r, _ := ret[0].(int)
	return r
}
func (mr *MockWorkerMockRecorder) NUnits() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NUnits", reflect.TypeOf((*MockWorker)(nil).NUnits))
}

func (m *MockWorker) NewVar(pol lit.LBool, decision bool) lit.Var {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NewVar", pol, decision)
	r, _ := ret[0].(lit.Var)
	return r
}
func (mr *MockWorkerMockRecorder) NewVar(pol, decision interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NewVar", reflect.TypeOf((*MockWorker)(nil).NewVar), pol, decision)
}

func (m *MockWorker) ReserveVars(n int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ReserveVars", n)
}
func (mr *MockWorkerMockRecorder) ReserveVars(n interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReserveVars", reflect.TypeOf((*MockWorker)(nil).ReserveVars), n)
}

func (m *MockWorker) AddClause(lits []lit.Lit) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddClause", lits)
	r, _ := ret[0].(bool)
	return r
}
func (mr *MockWorkerMockRecorder) AddClause(lits interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddClause", reflect.TypeOf((*MockWorker)(nil).AddClause), lits)
}

func (m *MockWorker) ImportClause(c clause.Clause) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ImportClause", c)
	r, _ := ret[0].(bool)
	return r
}
func (mr *MockWorkerMockRecorder) ImportClause(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ImportClause", reflect.TypeOf((*MockWorker)(nil).ImportClause), c)
}

func (m *MockWorker) GetUnit(i int) lit.Lit {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUnit", i)
	r, _ := ret[0].(lit.Lit)
	return r
}
func (mr *MockWorkerMockRecorder) GetUnit(i interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUnit", reflect.TypeOf((*MockWorker)(nil).GetUnit), i)
}

func (m *MockWorker) GetClause(i int) clause.Clause {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetClause", i)
	r, _ := ret[0].(clause.Clause)
	return r
}
func (mr *MockWorkerMockRecorder) GetClause(i interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetClause", reflect.TypeOf((*MockWorker)(nil).GetClause), i)
}

func (m *MockWorker) Eliminate(turnOff bool) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Eliminate", turnOff)
	r, _ := ret[0].(bool)
	return r
}
func (mr *MockWorkerMockRecorder) Eliminate(turnOff interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Eliminate", reflect.TypeOf((*MockWorker)(nil).Eliminate), turnOff)
}

func (m *MockWorker) SetFrozen(v lit.Var, frozen bool) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetFrozen", v, frozen)
}
func (mr *MockWorkerMockRecorder) SetFrozen(v, frozen interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetFrozen", reflect.TypeOf((*MockWorker)(nil).SetFrozen), v, frozen)
}

func (m *MockWorker) IsEliminated(v lit.Var) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsEliminated", v)
	r, _ := ret[0].(bool)
	return r
}
func (mr *MockWorkerMockRecorder) IsEliminated(v interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsEliminated", reflect.TypeOf((*MockWorker)(nil).IsEliminated), v)
}

func (m *MockWorker) SolveLimited(assumps []lit.Lit) lit.LBool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SolveLimited", assumps)
	r, _ := ret[0].(lit.LBool)
	return r
}
func (mr *MockWorkerMockRecorder) SolveLimited(assumps interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SolveLimited", reflect.TypeOf((*MockWorker)(nil).SolveLimited), assumps)
}

func (m *MockWorker) Interrupt() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Interrupt")
}
func (mr *MockWorkerMockRecorder) Interrupt() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Interrupt", reflect.TypeOf((*MockWorker)(nil).Interrupt))
}

func (m *MockWorker) Okay() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Okay")
	r, _ := ret[0].(bool)
	return r
}
func (mr *MockWorkerMockRecorder) Okay() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Okay", reflect.TypeOf((*MockWorker)(nil).Okay))
}

func (m *MockWorker) Diversify(seed, span int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Diversify", seed, span)
}
func (mr *MockWorkerMockRecorder) Diversify(seed, span interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Diversify", reflect.TypeOf((*MockWorker)(nil).Diversify), seed, span)
}

func (m *MockWorker) InitializeParallel(data *worker.SyncData, cb worker.SyncCallback) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "InitializeParallel", data, cb)
}
func (mr *MockWorkerMockRecorder) InitializeParallel(data, cb interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InitializeParallel", reflect.TypeOf((*MockWorker)(nil).InitializeParallel), data, cb)
}

func (m *MockWorker) CounterAccess() int64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CounterAccess")
	r, _ := ret[0].(int64)
	return r
}
func (mr *MockWorkerMockRecorder) CounterAccess() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CounterAccess", reflect.TypeOf((*MockWorker)(nil).CounterAccess))
}

func (m *MockWorker) Model() []lit.LBool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Model")
	r, _ := ret[0].([]lit.LBool)
	return r
}
func (mr *MockWorkerMockRecorder) Model() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Model", reflect.TypeOf((*MockWorker)(nil).Model))
}

func (m *MockWorker) Conflict() []lit.Lit {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Conflict")
	r, _ := ret[0].([]lit.Lit)
	return r
}
func (mr *MockWorkerMockRecorder) Conflict() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Conflict", reflect.TypeOf((*MockWorker)(nil).Conflict))
}

func (m *MockWorker) ExtendModel() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ExtendModel")
}
func (mr *MockWorkerMockRecorder) ExtendModel() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExtendModel", reflect.TypeOf((*MockWorker)(nil).ExtendModel))
}

func (m *MockWorker) LearnedSince(mark int) ([]clause.Clause, int) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LearnedSince", mark)
	r0, _ := ret[0].([]clause.Clause)
	r1, _ := ret[1].(int)
	return r0, r1
}
func (mr *MockWorkerMockRecorder) LearnedSince(mark interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LearnedSince", reflect.TypeOf((*MockWorker)(nil).LearnedSince), mark)
}

var _ worker.Worker = (*MockWorker)(nil)
