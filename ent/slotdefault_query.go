// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lmehta/cohortplan/ent/predicate"
	"github.com/lmehta/cohortplan/ent/slotdefault"
)

// SlotDefaultQuery is the builder for querying SlotDefault entities.
type SlotDefaultQuery struct {
	config
	ctx        *QueryContext
	order      []slotdefault.OrderOption
	inters     []Interceptor
	predicates []predicate.SlotDefault
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SlotDefaultQuery builder.
func (sdq *SlotDefaultQuery) Where(ps ...predicate.SlotDefault) *SlotDefaultQuery {
	sdq.predicates = append(sdq.predicates, ps...)
	return sdq
}

// Limit the number of records to be returned by this query.
func (sdq *SlotDefaultQuery) Limit(limit int) *SlotDefaultQuery {
	sdq.ctx.Limit = &limit
	return sdq
}

// Offset to start from.
func (sdq *SlotDefaultQuery) Offset(offset int) *SlotDefaultQuery {
	sdq.ctx.Offset = &offset
	return sdq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (sdq *SlotDefaultQuery) Unique(unique bool) *SlotDefaultQuery {
	sdq.ctx.Unique = &unique
	return sdq
}

// Order specifies how the records should be ordered.
func (sdq *SlotDefaultQuery) Order(o ...slotdefault.OrderOption) *SlotDefaultQuery {
	sdq.order = append(sdq.order, o...)
	return sdq
}

// First returns the first SlotDefault entity from the query.
// Returns a *NotFoundError when no SlotDefault was found.
func (sdq *SlotDefaultQuery) First(ctx context.Context) (*SlotDefault, error) {
	nodes, err := sdq.Limit(1).All(setContextOp(ctx, sdq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{slotdefault.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (sdq *SlotDefaultQuery) FirstX(ctx context.Context) *SlotDefault {
	node, err := sdq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SlotDefault ID from the query.
// Returns a *NotFoundError when no SlotDefault ID was found.
func (sdq *SlotDefaultQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = sdq.Limit(1).IDs(setContextOp(ctx, sdq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{slotdefault.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (sdq *SlotDefaultQuery) FirstIDX(ctx context.Context) int {
	id, err := sdq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SlotDefault entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SlotDefault entity is found.
// Returns a *NotFoundError when no SlotDefault entities are found.
func (sdq *SlotDefaultQuery) Only(ctx context.Context) (*SlotDefault, error) {
	nodes, err := sdq.Limit(2).All(setContextOp(ctx, sdq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{slotdefault.Label}
	default:
		return nil, &NotSingularError{slotdefault.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (sdq *SlotDefaultQuery) OnlyX(ctx context.Context) *SlotDefault {
	node, err := sdq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SlotDefault ID in the query.
// Returns a *NotSingularError when more than one SlotDefault ID is found.
// Returns a *NotFoundError when no entities are found.
func (sdq *SlotDefaultQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = sdq.Limit(2).IDs(setContextOp(ctx, sdq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{slotdefault.Label}
	default:
		err = &NotSingularError{slotdefault.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (sdq *SlotDefaultQuery) OnlyIDX(ctx context.Context) int {
	id, err := sdq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SlotDefaults.
func (sdq *SlotDefaultQuery) All(ctx context.Context) ([]*SlotDefault, error) {
	ctx = setContextOp(ctx, sdq.ctx, ent.OpQueryAll)
	if err := sdq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SlotDefault, *SlotDefaultQuery]()
	return withInterceptors[[]*SlotDefault](ctx, sdq, qr, sdq.inters)
}

// AllX is like All, but panics if an error occurs.
func (sdq *SlotDefaultQuery) AllX(ctx context.Context) []*SlotDefault {
	nodes, err := sdq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SlotDefault IDs.
func (sdq *SlotDefaultQuery) IDs(ctx context.Context) (ids []int, err error) {
	if sdq.ctx.Unique == nil && sdq.path != nil {
		sdq.Unique(true)
	}
	ctx = setContextOp(ctx, sdq.ctx, ent.OpQueryIDs)
	if err = sdq.Select(slotdefault.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (sdq *SlotDefaultQuery) IDsX(ctx context.Context) []int {
	ids, err := sdq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (sdq *SlotDefaultQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, sdq.ctx, ent.OpQueryCount)
	if err := sdq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, sdq, querierCount[*SlotDefaultQuery](), sdq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (sdq *SlotDefaultQuery) CountX(ctx context.Context) int {
	count, err := sdq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (sdq *SlotDefaultQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, sdq.ctx, ent.OpQueryExist)
	switch _, err := sdq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (sdq *SlotDefaultQuery) ExistX(ctx context.Context) bool {
	exist, err := sdq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SlotDefaultQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (sdq *SlotDefaultQuery) Clone() *SlotDefaultQuery {
	if sdq == nil {
		return nil
	}
	return &SlotDefaultQuery{
		config:     sdq.config,
		ctx:        sdq.ctx.Clone(),
		order:      append([]slotdefault.OrderOption{}, sdq.order...),
		inters:     append([]Interceptor{}, sdq.inters...),
		predicates: append([]predicate.SlotDefault{}, sdq.predicates...),
		// clone intermediate query.
		sql:  sdq.sql.Clone(),
		path: sdq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CohortID string `json:"cohort_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.SlotDefault.Query().
//		GroupBy(slotdefault.FieldCohortID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (sdq *SlotDefaultQuery) GroupBy(field string, fields ...string) *SlotDefaultGroupBy {
	sdq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SlotDefaultGroupBy{build: sdq}
	grbuild.flds = &sdq.ctx.Fields
	grbuild.label = slotdefault.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CohortID string `json:"cohort_id,omitempty"`
//	}
//
//	client.SlotDefault.Query().
//		Select(slotdefault.FieldCohortID).
//		Scan(ctx, &v)
func (sdq *SlotDefaultQuery) Select(fields ...string) *SlotDefaultSelect {
	sdq.ctx.Fields = append(sdq.ctx.Fields, fields...)
	sbuild := &SlotDefaultSelect{SlotDefaultQuery: sdq}
	sbuild.label = slotdefault.Label
	sbuild.flds, sbuild.scan = &sdq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SlotDefaultSelect configured with the given aggregations.
func (sdq *SlotDefaultQuery) Aggregate(fns ...AggregateFunc) *SlotDefaultSelect {
	return sdq.Select().Aggregate(fns...)
}

func (sdq *SlotDefaultQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range sdq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, sdq); err != nil {
				return err
			}
		}
	}
	for _, f := range sdq.ctx.Fields {
		if !slotdefault.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if sdq.path != nil {
		prev, err := sdq.path(ctx)
		if err != nil {
			return err
		}
		sdq.sql = prev
	}
	return nil
}

func (sdq *SlotDefaultQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SlotDefault, error) {
	var (
		nodes = []*SlotDefault{}
		_spec = sdq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SlotDefault).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SlotDefault{config: sdq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, sdq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (sdq *SlotDefaultQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := sdq.querySpec()
	_spec.Node.Columns = sdq.ctx.Fields
	if len(sdq.ctx.Fields) > 0 {
		_spec.Unique = sdq.ctx.Unique != nil && *sdq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, sdq.driver, _spec)
}

func (sdq *SlotDefaultQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(slotdefault.Table, slotdefault.Columns, sqlgraph.NewFieldSpec(slotdefault.FieldID, field.TypeInt))
	_spec.From = sdq.sql
	if unique := sdq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if sdq.path != nil {
		_spec.Unique = true
	}
	if fields := sdq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, slotdefault.FieldID)
		for i := range fields {
			if fields[i] != slotdefault.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := sdq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := sdq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := sdq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := sdq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (sdq *SlotDefaultQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(sdq.driver.Dialect())
	t1 := builder.Table(slotdefault.Table)
	columns := sdq.ctx.Fields
	if len(columns) == 0 {
		columns = slotdefault.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if sdq.sql != nil {
		selector = sdq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if sdq.ctx.Unique != nil && *sdq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range sdq.predicates {
		p(selector)
	}
	for _, p := range sdq.order {
		p(selector)
	}
	if offset := sdq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := sdq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// SlotDefaultGroupBy is the group-by builder for SlotDefault entities.
type SlotDefaultGroupBy struct {
	selector
	build *SlotDefaultQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (sdgb *SlotDefaultGroupBy) Aggregate(fns ...AggregateFunc) *SlotDefaultGroupBy {
	sdgb.fns = append(sdgb.fns, fns...)
	return sdgb
}

// Scan applies the selector query and scans the result into the given value.
func (sdgb *SlotDefaultGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, sdgb.build.ctx, ent.OpQueryGroupBy)
	if err := sdgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SlotDefaultQuery, *SlotDefaultGroupBy](ctx, sdgb.build, sdgb, sdgb.build.inters, v)
}

func (sdgb *SlotDefaultGroupBy) sqlScan(ctx context.Context, root *SlotDefaultQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(sdgb.fns))
	for _, fn := range sdgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*sdgb.flds)+len(sdgb.fns))
		for _, f := range *sdgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*sdgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := sdgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// SlotDefaultSelect is the builder for selecting fields of SlotDefault entities.
type SlotDefaultSelect struct {
	*SlotDefaultQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (sds *SlotDefaultSelect) Aggregate(fns ...AggregateFunc) *SlotDefaultSelect {
	sds.fns = append(sds.fns, fns...)
	return sds
}

// Scan applies the selector query and scans the result into the given value.
func (sds *SlotDefaultSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, sds.ctx, ent.OpQuerySelect)
	if err := sds.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SlotDefaultQuery, *SlotDefaultSelect](ctx, sds.SlotDefaultQuery, sds, sds.inters, v)
}

func (sds *SlotDefaultSelect) sqlScan(ctx context.Context, root *SlotDefaultQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(sds.fns))
	for _, fn := range sds.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*sds.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := sds.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
