/*
 * store.go, part of gomol.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package molstore keeps molecules in an SQLite database.
package molstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	chem "github.com/rmera/gomol"
	"gonum.org/v1/gonum/spatial/r3"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

//Memory is the path for a database that lives only in memory.
const Memory = ":memory:"

//Every saved molecule gets its own key, assigned by the database. The ID of
//the molecule is only unique in the process that created it, so it is
//stored as plain data.
const schema = `
CREATE TABLE IF NOT EXISTS molecules (
	rec       INTEGER PRIMARY KEY AUTOINCREMENT,
	mol_id    INTEGER NOT NULL,
	vendor_id TEXT NOT NULL,
	program   TEXT NOT NULL,
	comment   TEXT NOT NULL,
	natoms    INTEGER NOT NULL,
	nbonds    INTEGER NOT NULL,
	nrings    INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS atoms (
	mol         INTEGER NOT NULL,
	idx         INTEGER NOT NULL,
	symbol      TEXT NOT NULL,
	mass_number INTEGER NOT NULL,
	x REAL NOT NULL, y REAL NOT NULL, z REAL NOT NULL,
	charge      INTEGER NOT NULL,
	radical     INTEGER NOT NULL,
	valence     INTEGER NOT NULL,
	PRIMARY KEY (mol, idx)
);
CREATE TABLE IF NOT EXISTS bonds (
	mol        INTEGER NOT NULL,
	idx        INTEGER NOT NULL,
	a1         INTEGER NOT NULL,
	a2         INTEGER NOT NULL,
	bond_order INTEGER NOT NULL,
	stereo     INTEGER NOT NULL,
	PRIMARY KEY (mol, idx)
);
CREATE TABLE IF NOT EXISTS tags (
	mol   INTEGER NOT NULL,
	pos   INTEGER NOT NULL,
	name  TEXT NOT NULL,
	value TEXT NOT NULL,
	PRIMARY KEY (mol, pos)
);
CREATE INDEX IF NOT EXISTS tags_name_value ON tags(name, value);
`

//Store is a molecule database. It is safe for concurrent use.
type Store struct {
	db   *sql.DB
	path string
}

//Summary describes a stored molecule.
type Summary struct {
	Key        int64  //assigned by Save
	MoleculeID uint64 //ID the molecule had when it was saved
	VendorID   string
	Program    string
	Comment    string
	Atoms      int
	Bonds      int
	Rings      int
}

//Open opens, or creates, the database in path. Use Memory for a temporary,
//in-memory database.
func Open(path string) (*Store, error) {
	if path != Memory {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	//Each connection to Memory is a different database, and SQLite allows only
	//one writer anyway.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

//Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

//Path returns the path of the database.
func (s *Store) Path() string { return s.path }

//Save stores m as a new record and returns its key. Saving the same molecule
//twice gives two records. The atoms, bonds and data items are stored.
//Rings are only counted.
func (s *Store) Save(ctx context.Context, m *chem.Molecule) (key int64, retErr error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	res, err := tx.ExecContext(ctx, `INSERT INTO molecules(mol_id, vendor_id, program, comment, natoms, nbonds, nrings) VALUES(?,?,?,?,?,?,?)`,
		int64(m.ID()), m.VendorID, m.Program, m.Comment, m.NumAtoms(), m.NumBonds(), m.NumRings())
	if err != nil {
		return 0, fmt.Errorf("insert molecule %d: %w", m.ID(), err)
	}
	if key, err = res.LastInsertId(); err != nil {
		return 0, fmt.Errorf("key of molecule %d: %w", m.ID(), err)
	}
	for _, a := range m.Atoms() {
		massn := 0
		if a.Element != nil {
			massn = a.Element.MassNumber
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO atoms(mol, idx, symbol, mass_number, x, y, z, charge, radical, valence) VALUES(?,?,?,?,?,?,?,?,?,?)`,
			key, a.ID(), a.Symbol(), massn, a.Coords.X, a.Coords.Y, a.Coords.Z, a.Charge, int(a.Radical), a.Valence); err != nil {
			return 0, fmt.Errorf("insert atom %d of record %d: %w", a.ID(), key, err)
		}
	}
	for _, b := range m.Bonds() {
		if _, err := tx.ExecContext(ctx, `INSERT INTO bonds(mol, idx, a1, a2, bond_order, stereo) VALUES(?,?,?,?,?,?)`,
			key, b.ID(), b.Atom1().ID(), b.Atom2().ID(), int(b.Order), int(b.Stereo)); err != nil {
			return 0, fmt.Errorf("insert bond %d of record %d: %w", b.ID(), key, err)
		}
	}
	tags := m.Tags()
	for i, name := range m.TagNames() {
		if _, err := tx.ExecContext(ctx, `INSERT INTO tags(mol, pos, name, value) VALUES(?,?,?,?)`, key, i, name, tags[name]); err != nil {
			return 0, fmt.Errorf("insert tag %s of record %d: %w", name, key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit record %d: %w", key, err)
	}
	return key, nil
}

//Delete removes the record with the given key. If there is no such record,
//the error wraps chem.ErrNotFound.
func (s *Store) Delete(ctx context.Context, key int64) (retErr error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	res, err := tx.ExecContext(ctx, `DELETE FROM molecules WHERE rec = ?`, key)
	if err != nil {
		return fmt.Errorf("delete record %d: %w", key, err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("delete record %d: %w", key, err)
	} else if n == 0 {
		return fmt.Errorf("record %d: %w", key, chem.ErrNotFound)
	}
	for _, table := range []string{"atoms", "bonds", "tags"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE mol = ?", key); err != nil {
			return fmt.Errorf("clear %s of record %d: %w", table, key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit record %d: %w", key, err)
	}
	return nil
}

//Summary returns the description of the record with the given key. If there is no such record,
//the error wraps chem.ErrNotFound.
func (s *Store) Summary(ctx context.Context, key int64) (*Summary, error) {
	sum := &Summary{Key: key}
	var molID int64
	err := s.db.QueryRowContext(ctx, `SELECT mol_id, vendor_id, program, comment, natoms, nbonds, nrings FROM molecules WHERE rec = ?`, key).
		Scan(&molID, &sum.VendorID, &sum.Program, &sum.Comment, &sum.Atoms, &sum.Bonds, &sum.Rings)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("record %d: %w", key, chem.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("select record %d: %w", key, err)
	}
	sum.MoleculeID = uint64(molID)
	return sum, nil
}

//FindByTag returns, in increasing order, the keys of the records with a data item name
//equal to value.
func (s *Store) FindByTag(ctx context.Context, name, value string) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT mol FROM tags WHERE name = ? AND value = ? ORDER BY mol`, name, value)
	if err != nil {
		return nil, fmt.Errorf("select tags: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var ret []int64
	for rows.Next() {
		var key int64
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		ret = append(ret, key)
	}
	return ret, rows.Err()
}

//Load rebuilds the molecule stored with the given key. The result is a new molecule,
//with a new ID, and atoms and bonds numbered from 1 in their stored order. Elements
//are obtained from table, or from chem.DefaultTable() if table is nil.
//Rings are not restored.
func (s *Store) Load(ctx context.Context, key int64, table chem.PeriodicTable) (*chem.Molecule, error) {
	if table == nil {
		table = chem.DefaultTable()
	}
	sum, err := s.Summary(ctx, key)
	if err != nil {
		return nil, err
	}
	m := chem.NewMolecule()
	m.VendorID, m.Program, m.Comment = sum.VendorID, sum.Program, sum.Comment
	atoms, err := s.loadAtoms(ctx, key, table, m)
	if err != nil {
		return nil, err
	}
	if err := s.loadBonds(ctx, key, atoms, m); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `SELECT name, value FROM tags WHERE mol = ? ORDER BY pos`, key)
	if err != nil {
		return nil, fmt.Errorf("select tags: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		m.SetTag(name, value)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

//loadAtoms adds the stored atoms to m, and returns them by their stored index.
func (s *Store) loadAtoms(ctx context.Context, key int64, table chem.PeriodicTable, m *chem.Molecule) (map[int]*chem.Atom, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT idx, symbol, mass_number, x, y, z, charge, radical, valence FROM atoms WHERE mol = ? ORDER BY idx`, key)
	if err != nil {
		return nil, fmt.Errorf("select atoms: %w", err)
	}
	defer func() { _ = rows.Close() }()
	atoms := make(map[int]*chem.Atom)
	for rows.Next() {
		var idx, massn, charge, radical, valence int
		var sym string
		var c r3.Vec
		if err := rows.Scan(&idx, &sym, &massn, &c.X, &c.Y, &c.Z, &charge, &radical, &valence); err != nil {
			return nil, fmt.Errorf("scan atom: %w", err)
		}
		var el *chem.Element
		if massn != 0 {
			el, err = table.Isotope(sym, massn)
		} else {
			el, err = table.Element(sym)
		}
		if err != nil {
			return nil, fmt.Errorf("atom %d of record %d: %w", idx, key, err)
		}
		a := chem.NewAtom(el)
		a.Coords = c
		a.Charge = charge
		a.Radical = chem.Radical(radical)
		a.Valence = valence
		if err := m.AddAtom(a); err != nil {
			return nil, err
		}
		atoms[idx] = a
	}
	return atoms, rows.Err()
}

func (s *Store) loadBonds(ctx context.Context, key int64, atoms map[int]*chem.Atom, m *chem.Molecule) error {
	rows, err := s.db.QueryContext(ctx, `SELECT a1, a2, bond_order, stereo FROM bonds WHERE mol = ? ORDER BY idx`, key)
	if err != nil {
		return fmt.Errorf("select bonds: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var i1, i2, order, stereo int
		if err := rows.Scan(&i1, &i2, &order, &stereo); err != nil {
			return fmt.Errorf("scan bond: %w", err)
		}
		b, err := m.AddBond(atoms[i1], atoms[i2], chem.BondOrder(order))
		if err != nil {
			return fmt.Errorf("bond %d-%d of record %d: %w", i1, i2, key, err)
		}
		b.Stereo = chem.BondStereo(stereo)
	}
	return rows.Err()
}
