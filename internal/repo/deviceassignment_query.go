// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/omrozmn/x-ear-sub003/internal/repo/deviceassignment"
	"github.com/omrozmn/x-ear-sub003/internal/repo/inventoryitem"
	"github.com/omrozmn/x-ear-sub003/internal/repo/patient"
	"github.com/omrozmn/x-ear-sub003/internal/repo/paymentrecord"
	"github.com/omrozmn/x-ear-sub003/internal/repo/predicate"
	"github.com/omrozmn/x-ear-sub003/internal/repo/promissorynote"
)

// DeviceAssignmentQuery is the builder for querying DeviceAssignment entities.
type DeviceAssignmentQuery struct {
	config
	ctx                 *QueryContext
	order               []deviceassignment.OrderOption
	inters              []Interceptor
	predicates          []predicate.DeviceAssignment
	withPatient         *PatientQuery
	withInventoryItem   *InventoryItemQuery
	withPayments        *PaymentRecordQuery
	withPromissoryNotes *PromissoryNoteQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DeviceAssignmentQuery builder.
func (_q *DeviceAssignmentQuery) Where(ps ...predicate.DeviceAssignment) *DeviceAssignmentQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DeviceAssignmentQuery) Limit(limit int) *DeviceAssignmentQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DeviceAssignmentQuery) Offset(offset int) *DeviceAssignmentQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DeviceAssignmentQuery) Unique(unique bool) *DeviceAssignmentQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DeviceAssignmentQuery) Order(o ...deviceassignment.OrderOption) *DeviceAssignmentQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPatient chains the current query on the "patient" edge.
func (_q *DeviceAssignmentQuery) QueryPatient() *PatientQuery {
	query := (&PatientClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(deviceassignment.Table, deviceassignment.FieldID, selector),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, deviceassignment.PatientTable, deviceassignment.PatientColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryInventoryItem chains the current query on the "inventory_item" edge.
func (_q *DeviceAssignmentQuery) QueryInventoryItem() *InventoryItemQuery {
	query := (&InventoryItemClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(deviceassignment.Table, deviceassignment.FieldID, selector),
			sqlgraph.To(inventoryitem.Table, inventoryitem.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, deviceassignment.InventoryItemTable, deviceassignment.InventoryItemColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPayments chains the current query on the "payments" edge.
func (_q *DeviceAssignmentQuery) QueryPayments() *PaymentRecordQuery {
	query := (&PaymentRecordClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(deviceassignment.Table, deviceassignment.FieldID, selector),
			sqlgraph.To(paymentrecord.Table, paymentrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, deviceassignment.PaymentsTable, deviceassignment.PaymentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPromissoryNotes chains the current query on the "promissory_notes" edge.
func (_q *DeviceAssignmentQuery) QueryPromissoryNotes() *PromissoryNoteQuery {
	query := (&PromissoryNoteClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(deviceassignment.Table, deviceassignment.FieldID, selector),
			sqlgraph.To(promissorynote.Table, promissorynote.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, deviceassignment.PromissoryNotesTable, deviceassignment.PromissoryNotesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first DeviceAssignment entity from the query.
// Returns a *NotFoundError when no DeviceAssignment was found.
func (_q *DeviceAssignmentQuery) First(ctx context.Context) (*DeviceAssignment, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{deviceassignment.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DeviceAssignmentQuery) FirstX(ctx context.Context) *DeviceAssignment {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DeviceAssignment ID from the query.
// Returns a *NotFoundError when no DeviceAssignment ID was found.
func (_q *DeviceAssignmentQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{deviceassignment.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DeviceAssignmentQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DeviceAssignment entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DeviceAssignment entity is found.
// Returns a *NotFoundError when no DeviceAssignment entities are found.
func (_q *DeviceAssignmentQuery) Only(ctx context.Context) (*DeviceAssignment, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{deviceassignment.Label}
	default:
		return nil, &NotSingularError{deviceassignment.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DeviceAssignmentQuery) OnlyX(ctx context.Context) *DeviceAssignment {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DeviceAssignment ID in the query.
// Returns a *NotSingularError when more than one DeviceAssignment ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DeviceAssignmentQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{deviceassignment.Label}
	default:
		err = &NotSingularError{deviceassignment.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DeviceAssignmentQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DeviceAssignments.
func (_q *DeviceAssignmentQuery) All(ctx context.Context) ([]*DeviceAssignment, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DeviceAssignment, *DeviceAssignmentQuery]()
	return withInterceptors[[]*DeviceAssignment](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DeviceAssignmentQuery) AllX(ctx context.Context) []*DeviceAssignment {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DeviceAssignment IDs.
func (_q *DeviceAssignmentQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(deviceassignment.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DeviceAssignmentQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DeviceAssignmentQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DeviceAssignmentQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DeviceAssignmentQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DeviceAssignmentQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("repo: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *DeviceAssignmentQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DeviceAssignmentQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DeviceAssignmentQuery) Clone() *DeviceAssignmentQuery {
	if _q == nil {
		return nil
	}
	return &DeviceAssignmentQuery{
		config:              _q.config,
		ctx:                 _q.ctx.Clone(),
		order:               append([]deviceassignment.OrderOption{}, _q.order...),
		inters:              append([]Interceptor{}, _q.inters...),
		predicates:          append([]predicate.DeviceAssignment{}, _q.predicates...),
		withPatient:         _q.withPatient.Clone(),
		withInventoryItem:   _q.withInventoryItem.Clone(),
		withPayments:        _q.withPayments.Clone(),
		withPromissoryNotes: _q.withPromissoryNotes.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPatient tells the query-builder to eager-load the nodes that are connected to
// the "patient" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DeviceAssignmentQuery) WithPatient(opts ...func(*PatientQuery)) *DeviceAssignmentQuery {
	query := (&PatientClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPatient = query
	return _q
}

// WithInventoryItem tells the query-builder to eager-load the nodes that are connected to
// the "inventory_item" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DeviceAssignmentQuery) WithInventoryItem(opts ...func(*InventoryItemQuery)) *DeviceAssignmentQuery {
	query := (&InventoryItemClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withInventoryItem = query
	return _q
}

// WithPayments tells the query-builder to eager-load the nodes that are connected to
// the "payments" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DeviceAssignmentQuery) WithPayments(opts ...func(*PaymentRecordQuery)) *DeviceAssignmentQuery {
	query := (&PaymentRecordClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPayments = query
	return _q
}

// WithPromissoryNotes tells the query-builder to eager-load the nodes that are connected to
// the "promissory_notes" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DeviceAssignmentQuery) WithPromissoryNotes(opts ...func(*PromissoryNoteQuery)) *DeviceAssignmentQuery {
	query := (&PromissoryNoteClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPromissoryNotes = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.DeviceAssignment.Query().
//		GroupBy(deviceassignment.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *DeviceAssignmentQuery) GroupBy(field string, fields ...string) *DeviceAssignmentGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DeviceAssignmentGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = deviceassignment.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.DeviceAssignment.Query().
//		Select(deviceassignment.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *DeviceAssignmentQuery) Select(fields ...string) *DeviceAssignmentSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DeviceAssignmentSelect{DeviceAssignmentQuery: _q}
	sbuild.label = deviceassignment.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DeviceAssignmentSelect configured with the given aggregations.
func (_q *DeviceAssignmentQuery) Aggregate(fns ...AggregateFunc) *DeviceAssignmentSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DeviceAssignmentQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("repo: uninitialized interceptor (forgotten import repo/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !deviceassignment.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *DeviceAssignmentQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DeviceAssignment, error) {
	var (
		nodes       = []*DeviceAssignment{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withPatient != nil,
			_q.withInventoryItem != nil,
			_q.withPayments != nil,
			_q.withPromissoryNotes != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DeviceAssignment).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DeviceAssignment{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withPatient; query != nil {
		if err := _q.loadPatient(ctx, query, nodes, nil,
			func(n *DeviceAssignment, e *Patient) { n.Edges.Patient = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withInventoryItem; query != nil {
		if err := _q.loadInventoryItem(ctx, query, nodes, nil,
			func(n *DeviceAssignment, e *InventoryItem) { n.Edges.InventoryItem = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPayments; query != nil {
		if err := _q.loadPayments(ctx, query, nodes,
			func(n *DeviceAssignment) { n.Edges.Payments = []*PaymentRecord{} },
			func(n *DeviceAssignment, e *PaymentRecord) { n.Edges.Payments = append(n.Edges.Payments, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPromissoryNotes; query != nil {
		if err := _q.loadPromissoryNotes(ctx, query, nodes,
			func(n *DeviceAssignment) { n.Edges.PromissoryNotes = []*PromissoryNote{} },
			func(n *DeviceAssignment, e *PromissoryNote) {
				n.Edges.PromissoryNotes = append(n.Edges.PromissoryNotes, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DeviceAssignmentQuery) loadPatient(ctx context.Context, query *PatientQuery, nodes []*DeviceAssignment, init func(*DeviceAssignment), assign func(*DeviceAssignment, *Patient)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*DeviceAssignment)
	for i := range nodes {
		fk := nodes[i].PatientID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(patient.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "patient_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *DeviceAssignmentQuery) loadInventoryItem(ctx context.Context, query *InventoryItemQuery, nodes []*DeviceAssignment, init func(*DeviceAssignment), assign func(*DeviceAssignment, *InventoryItem)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*DeviceAssignment)
	for i := range nodes {
		fk := nodes[i].InventoryItemID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(inventoryitem.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "inventory_item_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *DeviceAssignmentQuery) loadPayments(ctx context.Context, query *PaymentRecordQuery, nodes []*DeviceAssignment, init func(*DeviceAssignment), assign func(*DeviceAssignment, *PaymentRecord)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*DeviceAssignment)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(paymentrecord.FieldAssignmentID)
	}
	query.Where(predicate.PaymentRecord(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(deviceassignment.PaymentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AssignmentID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "assignment_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DeviceAssignmentQuery) loadPromissoryNotes(ctx context.Context, query *PromissoryNoteQuery, nodes []*DeviceAssignment, init func(*DeviceAssignment), assign func(*DeviceAssignment, *PromissoryNote)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*DeviceAssignment)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(promissorynote.FieldAssignmentID)
	}
	query.Where(predicate.PromissoryNote(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(deviceassignment.PromissoryNotesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AssignmentID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "assignment_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *DeviceAssignmentQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DeviceAssignmentQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(deviceassignment.Table, deviceassignment.Columns, sqlgraph.NewFieldSpec(deviceassignment.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deviceassignment.FieldID)
		for i := range fields {
			if fields[i] != deviceassignment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withPatient != nil {
			_spec.Node.AddColumnOnce(deviceassignment.FieldPatientID)
		}
		if _q.withInventoryItem != nil {
			_spec.Node.AddColumnOnce(deviceassignment.FieldInventoryItemID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *DeviceAssignmentQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(deviceassignment.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = deviceassignment.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DeviceAssignmentGroupBy is the group-by builder for DeviceAssignment entities.
type DeviceAssignmentGroupBy struct {
	selector
	build *DeviceAssignmentQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DeviceAssignmentGroupBy) Aggregate(fns ...AggregateFunc) *DeviceAssignmentGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DeviceAssignmentGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DeviceAssignmentQuery, *DeviceAssignmentGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DeviceAssignmentGroupBy) sqlScan(ctx context.Context, root *DeviceAssignmentQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DeviceAssignmentSelect is the builder for selecting fields of DeviceAssignment entities.
type DeviceAssignmentSelect struct {
	*DeviceAssignmentQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DeviceAssignmentSelect) Aggregate(fns ...AggregateFunc) *DeviceAssignmentSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DeviceAssignmentSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DeviceAssignmentQuery, *DeviceAssignmentSelect](ctx, _s.DeviceAssignmentQuery, _s, _s.inters, v)
}

func (_s *DeviceAssignmentSelect) sqlScan(ctx context.Context, root *DeviceAssignmentQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
