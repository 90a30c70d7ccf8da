package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"frontdesk/shared/logger"

	"github.com/jmoiron/sqlx"
)

var errRequiredFilter = errors.New("required filter")

type column struct {
	name  string
	table string
	alias string
}

// Repository derives its SELECT and INSERT column lists from the db, table
// and column tags of T. A T exposing GetJoinQuery() has that join appended
// to every read.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []column
	insertColumns []string
	join          string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       columns,
		insertColumns: insertColumns,
		join:          joinQuery(zero),
	}
}

func joinQuery(model any) string {
	method := reflect.ValueOf(model).MethodByName("GetJoinQuery")
	if !method.IsValid() {
		return constant.Empty
	}

	out := method.Call(nil)
	if len(out) == 0 {
		return constant.Empty
	}

	return out[0].String()
}

func (repo *Repository[T]) scope(ctx context.Context, op string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, op))
}

// fail logs and traces err, then wraps it with the store translation.
func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, TranslateError(err))
}

// read prepares query against the read pool and hands the statement to fn.
func (repo *Repository[T]) read(ctx context.Context, scope otel.Scope, query string, fn func(stmt *sqlx.NamedStmt) error) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	return fn(stmt)
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	ctx, scope := repo.scope(ctx, "InsertTx")
	defer scope.End()

	placeholders := make([]string, 0, len(repo.insertColumns))
	for _, col := range repo.insertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.insertColumns, ", "), strings.Join(placeholders, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := sqltx.NamedExecContext(ctx, query, model); err != nil {
		return repo.fail(scope, "insert data", err)
	}

	return nil
}

// Get returns the zero T, not an error, when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.scope(ctx, "Get")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s %s", repo.selectList(columns...), repo.table, repo.join, where)

	var model T

	err := repo.read(ctx, scope, query, func(stmt *sqlx.NamedStmt) error {
		err := stmt.GetContext(ctx, &model, args)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return repo.fail(scope, "get data", err)
		}

		return nil
	})

	return model, err
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.scope(ctx, "GetAll")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	var ordering, pagination string

	switch {
	case params.Page > 0 && params.Limit > 0:
		args["limit"] = params.Limit
		args["offset"] = (params.Page - 1) * params.Limit
		pagination = "LIMIT :limit OFFSET :offset"
	case params.Limit > 0:
		args["limit"] = params.Limit
		pagination = "LIMIT :limit"
	}

	if params.SortBy != constant.Empty && params.SortDir != constant.Empty {
		ordering = fmt.Sprintf("ORDER BY %s %s", params.SortBy, params.SortDir)
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s %s %s %s", repo.selectList(columns...), repo.table, repo.join, where, ordering, pagination)

	var models []T

	err := repo.read(ctx, scope, query, func(stmt *sqlx.NamedStmt) error {
		if err := stmt.SelectContext(ctx, &models, args); err != nil {
			return repo.fail(scope, "get all data", err)
		}

		return nil
	})

	return models, err
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.scope(ctx, "Count")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s %s", repo.table, repo.primaryColumn, repo.table, repo.join, where)

	var count int

	err := repo.read(ctx, scope, query, func(stmt *sqlx.NamedStmt) error {
		if err := stmt.GetContext(ctx, &count, args); err != nil {
			return repo.fail(scope, "count data", err)
		}

		return nil
	})

	return count, err
}

// UpdateTx sets the columns in mod on every row matching filter. An empty
// filter is refused rather than touching the whole table.
func (repo *Repository[T]) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "UpdateTx")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == constant.Empty {
		return errRequiredFilter
	}

	assignments := make([]string, 0, len(mod))
	for col := range mod {
		assignments = append(assignments, fmt.Sprintf("%s = :%s", col, col))
	}

	slices.Sort(assignments)

	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, strings.Join(assignments, ", "), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	maps.Copy(args, mod)

	if _, err := sqltx.NamedExecContext(ctx, query, args); err != nil {
		return repo.fail(scope, "update data", err)
	}

	return nil
}

func (repo *Repository[T]) selectList(only ...string) string {
	list := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		switch {
		case col.table == constant.Empty:
			list = append(list, col.name)
		case col.alias != constant.Empty:
			list = append(list, fmt.Sprintf("%s.%s AS %s", col.table, col.name, col.alias))
		default:
			list = append(list, fmt.Sprintf("%s.%s", col.table, col.name))
		}
	}

	return strings.Join(list, ", ")
}

func (repo *Repository[T]) BuildWhereClause(ctx context.Context, filter dto.FilterGroup) (string, map[string]any) {
	_, scope := repo.scope(ctx, "BuildWhereClause")
	defer scope.End()

	where, args := filter.GetWhereClause()
	if where == constant.Empty {
		return where, map[string]any{}
	}

	return fmt.Sprintf(" WHERE %s ", where), args
}

func getColumns(table string, t reflect.Type) (columns []column, insertColumns []string) {
	for i := range t.NumField() {
		field := t.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			cols, inserts := getColumns(table, field.Type)
			columns = append(columns, cols...)
			insertColumns = append(insertColumns, inserts...)
		}

		dbTag := field.Tag.Get("db")
		if dbTag == constant.Empty {
			continue
		}

		owner := field.Tag.Get("table")
		if owner == constant.Empty {
			owner = table
		}

		if owner == table {
			insertColumns = append(insertColumns, dbTag)
		}

		if colTag := field.Tag.Get("column"); colTag != constant.Empty {
			columns = append(columns, column{name: colTag, table: owner, alias: dbTag})
		} else {
			columns = append(columns, column{name: dbTag, table: owner})
		}
	}

	return columns, insertColumns
}
