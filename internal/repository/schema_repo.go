package repository

import (
	"context"

	"gorm.io/gorm"
)

// Column 表字段描述
type Column struct {
	Name     string
	Type     string
	Nullable bool
}

// SchemaRepository 数据库结构查询（运维接口使用）
type SchemaRepository interface {
	HasTable(ctx context.Context, table string) bool
	Columns(ctx context.Context, table string) ([]Column, error)
}

// schemaRepo SchemaRepository 的 GORM 实现
type schemaRepo struct {
	db *gorm.DB
}

// NewSchemaRepo 创建 SchemaRepository 实例
func NewSchemaRepo(db *gorm.DB) SchemaRepository {
	return &schemaRepo{db: db}
}

func (r *schemaRepo) HasTable(ctx context.Context, table string) bool {
	return r.db.WithContext(ctx).Migrator().HasTable(table)
}

func (r *schemaRepo) Columns(ctx context.Context, table string) ([]Column, error) {
	types, err := r.db.WithContext(ctx).Migrator().ColumnTypes(table)
	if err != nil {
		return nil, err
	}
	columns := make([]Column, 0, len(types))
	for _, ct := range types {
		nullable, _ := ct.Nullable()
		columns = append(columns, Column{
			Name:     ct.Name(),
			Type:     ct.DatabaseTypeName(),
			Nullable: nullable,
		})
	}
	return columns, nil
}
