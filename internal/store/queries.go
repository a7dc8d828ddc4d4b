package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Product queries.
const (
	queryCreateProduct = `
		INSERT INTO products (
			name, category, brand, model, description, image_url,
			created_at, updated_at
		) VALUES (
			@name, @category, @brand, @model, @description, @image_url,
			now(), now()
		)
		RETURNING id, created_at, updated_at`

	queryGetProduct = `
		SELECT id, name, COALESCE(category, ''), COALESCE(brand, ''),
			COALESCE(model, ''), COALESCE(description, ''), COALESCE(image_url, ''),
			created_at, updated_at
		FROM products
		WHERE id = $1`

	queryGetProductsByIDs = `
		SELECT id, name, COALESCE(category, ''), COALESCE(brand, ''),
			COALESCE(model, ''), COALESCE(description, ''), COALESCE(image_url, ''),
			created_at, updated_at
		FROM products
		WHERE id = ANY($1)`
)

// Store queries.
const (
	queryCreateStore = `
		INSERT INTO stores (name, slug, url, active, created_at)
		VALUES (@name, @slug, @url, @active, now())
		RETURNING id, created_at`

	queryListStoresAll = `
		SELECT id, name, slug, COALESCE(url, ''), active, created_at
		FROM stores
		ORDER BY name`

	queryListStoresActive = `
		SELECT id, name, slug, COALESCE(url, ''), active, created_at
		FROM stores
		WHERE active
		ORDER BY name`
)

// Quote queries. The price_quotes table is append-only; seq is a bigserial
// that breaks ties between quotes sharing an observed_at timestamp.
const (
	queryInsertQuote = `
		INSERT INTO price_quotes (
			product_id, store_id, price, currency, availability,
			title, source_url, shipping_cost, observed_at
		) VALUES (
			@product_id, @store_id, @price, @currency, @availability,
			@title, @source_url, @shipping_cost, @observed_at
		)`

	queryLatestQuotes = `
		SELECT DISTINCT ON (product_id, store_id)
			product_id, store_id, price, currency, availability,
			COALESCE(title, ''), COALESCE(source_url, ''), shipping_cost, observed_at
		FROM price_quotes
		WHERE product_id = ANY($1)
		ORDER BY product_id, store_id, observed_at DESC, seq DESC`

	queryQuoteHistory = `
		SELECT product_id, store_id, price, currency, availability,
			COALESCE(title, ''), COALESCE(source_url, ''), shipping_cost, observed_at
		FROM price_quotes
		WHERE product_id = $1 AND store_id = $2
		ORDER BY observed_at DESC, seq DESC
		LIMIT $3`
)

// Alert queries.
const (
	queryCreateAlert = `
		INSERT INTO price_alerts (user_id, product_id, target_price, is_active, created_at)
		VALUES ($1, $2, $3, true, now())
		RETURNING id, created_at`

	queryListActiveAlertsByProducts = `
		SELECT id, user_id, product_id, target_price, is_active, created_at, fired_at
		FROM price_alerts
		WHERE product_id = ANY($1) AND is_active
		ORDER BY created_at`

	queryListAlertsByUser = `
		SELECT id, user_id, product_id, target_price, is_active, created_at, fired_at
		FROM price_alerts
		WHERE user_id = $1
		ORDER BY created_at DESC`

	queryDeactivateAlert = `
		UPDATE price_alerts
		SET is_active = false, fired_at = now()
		WHERE id = $1 AND is_active`

	queryDeleteAlert = `
		DELETE FROM price_alerts
		WHERE id = $1 AND user_id = $2`
)

// Favorite queries.
const (
	queryCreateFavorite = `
		INSERT INTO favorites (user_id, product_id, created_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id, product_id) DO NOTHING
		RETURNING id, created_at`

	queryListFavoritesByUser = `
		SELECT id, user_id, product_id, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC`

	queryDeleteFavorite = `
		DELETE FROM favorites
		WHERE id = $1 AND user_id = $2`

	queryListTrackedProductIDs = `
		SELECT product_id FROM price_alerts WHERE is_active
		UNION
		SELECT product_id FROM favorites
		ORDER BY product_id`
)

// Job run queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name, started_at, status)
		VALUES ($1, now(), 'running')
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs
		SET completed_at = now(), status = $2, error_text = $3, rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryListLatestJobRuns = `
		SELECT DISTINCT ON (job_name)
			id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		ORDER BY job_name, started_at DESC`
)
