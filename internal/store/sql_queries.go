package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-notes-sync/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// itemColumns is the column order every item query selects and scans.
var itemColumns = []string{
	"id",
	"cipher",
	"iv",
	"salt",
	"alg",
	"length",
	"sync_version",
	"client_version",
}

// tableFor binds an item type to its table.
func tableFor(t models.ItemType) (string, error) {
	switch t {
	case models.SettingItem:
		return "setting_items", nil
	case models.Attachment:
		return "attachments", nil
	case models.Note:
		return "notes", nil
	case models.Notebook:
		return "notebooks", nil
	case models.Content:
		return "contents", nil
	case models.Shortcut:
		return "shortcuts", nil
	case models.Reminder:
		return "reminders", nil
	case models.Color:
		return "colors", nil
	case models.Tag:
		return "tags", nil
	case models.Vault:
		return "vaults", nil
	case models.Relation:
		return "relations", nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownItemType, t)
}

const upsertItemSuffix = `ON CONFLICT (owner_id, id) DO UPDATE SET
	cipher = EXCLUDED.cipher,
	iv = EXCLUDED.iv,
	salt = EXCLUDED.salt,
	alg = EXCLUDED.alg,
	length = EXCLUDED.length,
	sync_version = EXCLUDED.sync_version,
	client_version = EXCLUDED.client_version,
	updated_at = NOW()`

// buildUpsertItemQuery builds the insert-or-replace of one item. The SQL text
// depends only on the item type, so it can be prepared once per table.
func buildUpsertItemQuery(ownerID string, item models.Item, syncVersion int64) (string, []any, error) {
	table, err := tableFor(item.Type)
	if err != nil {
		return "", nil, err
	}

	query, args, err := psql.
		Insert(table).
		Columns("owner_id", "id", "cipher", "iv", "salt", "alg", "length", "sync_version", "client_version", "updated_at").
		Values(ownerID, item.ID, item.Cipher, item.IV, item.Salt, item.Algorithm, item.Length, syncVersion, item.ClientVersion, sq.Expr("NOW()")).
		Suffix(upsertItemSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildItemsByIDsQuery selects the listed ids of one table.
func buildItemsByIDsQuery(ownerID string, t models.ItemType, ids []string) (string, []any, error) {
	table, err := tableFor(t)
	if err != nil {
		return "", nil, err
	}

	query, args, err := psql.
		Select(itemColumns...).
		From(table).
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.Eq{"id": ids}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildItemsPageQuery selects the next keyset page of one table ordered by
// id. An empty afterID starts from the beginning.
func buildItemsPageQuery(ownerID string, t models.ItemType, afterID string, limit int) (string, []any, error) {
	table, err := tableFor(t)
	if err != nil {
		return "", nil, err
	}

	builder := psql.
		Select(itemColumns...).
		From(table).
		Where(sq.Eq{"owner_id": ownerID})
	if afterID != "" {
		builder = builder.Where(sq.Gt{"id": afterID})
	}

	query, args, err := builder.
		OrderBy("id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildChangedAfterQuery selects the next page of items changed after cursor
// ordered by (sync_version, id). A nil last starts right after cursor.
func buildChangedAfterQuery(ownerID string, t models.ItemType, cursor int64, last *models.Item, limit int) (string, []any, error) {
	table, err := tableFor(t)
	if err != nil {
		return "", nil, err
	}

	builder := psql.
		Select(itemColumns...).
		From(table).
		Where(sq.Eq{"owner_id": ownerID})
	if last == nil {
		builder = builder.Where(sq.Gt{"sync_version": cursor})
	} else {
		builder = builder.Where(sq.Expr("(sync_version, id) > (?, ?)", last.SyncVersion, last.ID))
	}

	query, args, err := builder.
		OrderBy("sync_version", "id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCountChangedAfterQuery counts the items of one table changed after
// cursor.
func buildCountChangedAfterQuery(ownerID string, t models.ItemType, cursor int64) (string, []any, error) {
	table, err := tableFor(t)
	if err != nil {
		return "", nil, err
	}

	query, args, err := psql.
		Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.Gt{"sync_version": cursor}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeleteOwnerItemsQuery removes every item of one table owned by
// ownerID.
func buildDeleteOwnerItemsQuery(ownerID string, t models.ItemType) (string, []any, error) {
	table, err := tableFor(t)
	if err != nil {
		return "", nil, err
	}

	query, args, err := psql.
		Delete(table).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

const (
	getSyncState = `SELECT last_synced, vault_key FROM sync_states WHERE owner_id = $1;`

	advanceLastSynced = `INSERT INTO sync_states (owner_id, last_synced)
		VALUES ($1, $2)
		ON CONFLICT (owner_id) DO UPDATE
		SET last_synced = GREATEST(sync_states.last_synced, EXCLUDED.last_synced), updated_at = NOW()
		RETURNING last_synced;`

	setVaultKey = `INSERT INTO sync_states (owner_id, vault_key)
		VALUES ($1, $2)
		ON CONFLICT (owner_id) DO UPDATE
		SET vault_key = EXCLUDED.vault_key, updated_at = NOW();`

	deleteSyncState = `DELETE FROM sync_states WHERE owner_id = $1;`
)

const (
	createDevice = `INSERT INTO devices (owner_id, device_id, registered_at, reset_requested, unsynced, pending)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (owner_id, device_id) DO UPDATE
		SET registered_at = EXCLUDED.registered_at,
			reset_requested = EXCLUDED.reset_requested,
			unsynced = EXCLUDED.unsynced,
			pending = EXCLUDED.pending;`

	getDevice = `SELECT registered_at, reset_requested, unsynced, pending
		FROM devices
		WHERE owner_id = $1 AND device_id = $2;`

	getDeviceForUpdate = `SELECT registered_at, reset_requested, unsynced, pending
		FROM devices
		WHERE owner_id = $1 AND device_id = $2
		FOR UPDATE;`

	updateDevice = `UPDATE devices
		SET reset_requested = $3, unsynced = $4, pending = $5
		WHERE owner_id = $1 AND device_id = $2;`

	deleteDevice = `DELETE FROM devices WHERE owner_id = $1 AND device_id = $2;`

	listDevices = `SELECT device_id, registered_at, reset_requested, unsynced, pending
		FROM devices
		WHERE owner_id = $1
		ORDER BY device_id;`

	deleteOwnerDevices = `DELETE FROM devices WHERE owner_id = $1;`
)
