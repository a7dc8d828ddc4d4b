package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

const baseProductsSelect = `SELECT id, name, COALESCE(category, ''), COALESCE(brand, ''),
	COALESCE(model, ''), COALESCE(description, ''), COALESCE(image_url, ''),
	created_at, updated_at
FROM products`

const countProductsSelect = "SELECT COUNT(*) FROM products"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a catalog
// query. It returns two SQL strings (one for the data query, one for the
// count query) and the positional parameters.
func (q *ProductQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.NameLike != "" {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", paramIdx))
		args = append(args, "%"+q.NameLike+"%")
		paramIdx++
	}

	if q.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", paramIdx))
		args = append(args, q.Category)
		paramIdx++
	}

	if q.Brand != "" {
		conditions = append(conditions, fmt.Sprintf("brand = $%d", paramIdx))
		args = append(args, q.Brand)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY name LIMIT %d OFFSET %d",
		baseProductsSelect, whereClause, limit, offset,
	)

	countSQL = countProductsSelect + whereClause

	return dataSQL, countSQL, args
}
