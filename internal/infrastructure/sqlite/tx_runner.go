package sqlite

import (
	"context"
	"fmt"

	"github.com/tu-usuario/ventas-campo/internal/application/facturacion"
	"github.com/tu-usuario/ventas-campo/internal/application/inventario"
	"github.com/tu-usuario/ventas-campo/internal/domain/repository"
)

// Ensure TxRunner implements facturacion.TxRunner and inventario.TxRunner.
var _ facturacion.TxRunner = (*TxRunner)(nil)
var _ inventario.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción SQLite.
type TxRunner struct {
	db *DB
}

// NewTxRunner construye el runner con el handle de la base.
func NewTxRunner(db *DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia una transacción, ejecuta fn con el repositorio de productos
// atado a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(productoRepo repository.ProductoRepository) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(NewProductoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunFacturacion inicia una transacción con los repositorios de facturas y
// productos (para CrearFactura). Cualquier error de fn revierte todo lo
// escrito: cabecera, líneas y descuentos de stock.
func (r *TxRunner) RunFacturacion(ctx context.Context, fn func(
	facturaRepo repository.FacturaRepository,
	productoRepo repository.ProductoRepository,
) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(NewFacturaRepository(tx), NewProductoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
