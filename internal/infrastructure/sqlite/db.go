package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB envuelve el handle a la base de datos SQLite local. Se construye una vez
// al arranque y se inyecta a repositorios y TxRunner; ningún componente puede
// tocar el almacén antes de que Open haya retornado sin error.
type DB struct {
	*sql.DB
}

// schema define las tablas del almacén local. Idempotente vía
// CREATE TABLE IF NOT EXISTS: llamadas repetidas nunca fallan ni pierden datos.
//
// Reglas referenciales:
//   - facturas.local_id  → locales.id   ON DELETE CASCADE
//   - lineas.factura_id  → facturas.id  ON DELETE CASCADE
//   - lineas.producto_id → productos.id ON DELETE RESTRICT
//
// Los montos se guardan como TEXT y se convierten con shopspring/decimal
// para evitar redondeos binarios.
const schema = `
CREATE TABLE IF NOT EXISTS locales (
    id              INTEGER PRIMARY KEY NOT NULL,
    ci_rif          TEXT NOT NULL UNIQUE,
    tipo_local      TEXT,
    nombre_local    TEXT,
    ubicacion_texto TEXT,
    lat             REAL NOT NULL,
    lon             REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS productos (
    id           INTEGER PRIMARY KEY NOT NULL,
    nombre       TEXT NOT NULL UNIQUE,
    stock_actual INTEGER NOT NULL,
    precio_venta TEXT
);

CREATE TABLE IF NOT EXISTS facturas (
    id            INTEGER PRIMARY KEY NOT NULL,
    local_id      INTEGER NOT NULL,
    fecha_factura TEXT NOT NULL,
    total_neto    TEXT,
    total_bruto   TEXT,
    FOREIGN KEY (local_id) REFERENCES locales(id)
        ON DELETE CASCADE
        ON UPDATE CASCADE
);

CREATE TABLE IF NOT EXISTS facturacion_productos (
    id              INTEGER PRIMARY KEY NOT NULL,
    factura_id      INTEGER NOT NULL,
    producto_id     INTEGER NOT NULL,
    cantidad        INTEGER NOT NULL,
    precio_unitario TEXT,
    FOREIGN KEY (factura_id) REFERENCES facturas(id)
        ON DELETE CASCADE
        ON UPDATE CASCADE,
    FOREIGN KEY (producto_id) REFERENCES productos(id)
        ON DELETE RESTRICT
        ON UPDATE CASCADE
);

CREATE TABLE IF NOT EXISTS usuarios (
    id         INTEGER PRIMARY KEY NOT NULL,
    nombre     TEXT NOT NULL UNIQUE,
    clave_hash TEXT NOT NULL,
    created_at TEXT NOT NULL
);
`

// Open abre (o crea) el archivo de base de datos y asegura el esquema.
// Activa foreign keys y WAL. Un fallo aquí es fatal para la sesión: el
// llamador no debe continuar hacia la operación normal.
func Open(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir base de datos %s: %w", path, err)
	}

	// Un solo escritor lógico: el modelo de acceso es cooperativo y SQLite
	// serializa de todas formas; una conexión evita SQLITE_BUSY espurios y
	// hace que ":memory:" sea estable en tests.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping base de datos %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("inicializar esquema: %w", err)
	}
	return &DB{DB: db}, nil
}
