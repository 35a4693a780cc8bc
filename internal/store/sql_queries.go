package store

const userColumns = `id, username, email, password_hash, first_name, last_name, bio,
    profile_image, job_title, location, created_at, updated_at`

const (
	createUser = `INSERT INTO users (username, email, password_hash, first_name, last_name)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + userColumns + `;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	updateUserProfile = `UPDATE users
    SET email = $2, first_name = $3, last_name = $4, bio = $5,
        profile_image = $6, job_title = $7, location = $8, updated_at = now()
    WHERE id = $1
    RETURNING ` + userColumns + `;`
)

const settingsColumns = `user_id, theme, layout, color_primary, color_secondary, font_family, is_public, updated_at`

const (
	getSettings = `SELECT ` + settingsColumns + `
    FROM portfolio_settings
    WHERE user_id = $1;`

	upsertSettings = `INSERT INTO portfolio_settings
        (user_id, theme, layout, color_primary, color_secondary, font_family, is_public)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    ON CONFLICT (user_id) DO UPDATE
    SET theme = EXCLUDED.theme,
        layout = EXCLUDED.layout,
        color_primary = EXCLUDED.color_primary,
        color_secondary = EXCLUDED.color_secondary,
        font_family = EXCLUDED.font_family,
        is_public = EXCLUDED.is_public,
        updated_at = now()
    RETURNING ` + settingsColumns + `;`
)

const (
	listSkills = `SELECT id, name, category, icon
    FROM skills
    WHERE ($1::text = '' OR category = $1::text)
    ORDER BY name;`

	getSkill = `SELECT id, name, category, icon
    FROM skills
    WHERE id = $1;`
)
