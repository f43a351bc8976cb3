package dto

// ColumnResponse 表字段描述
type ColumnResponse struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable"`
}

// TableSchemaResponse 运维接口：表结构
type TableSchemaResponse struct {
	Table   string           `json:"table"`
	Columns []ColumnResponse `json:"columns"`
}
