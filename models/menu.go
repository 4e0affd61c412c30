package models

import "time"

// Objetivo is a nutrition goal. A row with UsuarioID set is owned by that user
// and only mutable by them; a row without owner is a shared catalog entry.
type Objetivo struct {
	ObjetivoID    uint      `json:"objetivoId" gorm:"column:objetivo_id;primaryKey"`
	Nombre        string    `json:"nombre" gorm:"size:100;not null"`
	TieneTiempo   bool      `json:"tieneTiempo" gorm:"column:tiene_tiempo;default:false"`
	FechaCreacion time.Time `json:"fechaCreacion" gorm:"column:fecha_creacion;autoCreateTime"`
	UsuarioID     *uint     `json:"usuarioId,omitempty" gorm:"column:usuario_id"`
}

func (Objetivo) TableName() string { return "objetivos" }

type Menu struct {
	MenuID        uint      `json:"menuId" gorm:"column:menu_id;primaryKey"`
	UsuarioID     uint      `json:"usuarioId" gorm:"column:usuario_id;not null"`
	ObjetivoID    uint      `json:"objetivoId" gorm:"column:objetivo_id;not null"`
	ComidaID      uint      `json:"comidaId" gorm:"column:comida_id;not null"`
	FechaCreacion time.Time `json:"fechaCreacion" gorm:"column:fecha_creacion;autoCreateTime"`
	MetodoID      *uint     `json:"metodoId,omitempty" gorm:"column:metodo_id"`

	Usuario  *Usuario           `json:"-" gorm:"foreignKey:UsuarioID;references:UsuarioID"`
	Objetivo *Objetivo          `json:"-" gorm:"foreignKey:ObjetivoID;references:ObjetivoID"`
	Comida   *Comida            `json:"-" gorm:"foreignKey:ComidaID;references:ComidaID"`
	Metodo   *MetodoPreparacion `json:"-" gorm:"foreignKey:MetodoID;references:MetodoID"`
}

func (Menu) TableName() string { return "menus" }

// SeleccionIngrediente is one ingredient picked into a menu.
type SeleccionIngrediente struct {
	SeleccionID   uint     `json:"seleccionId" gorm:"column:seleccion_id;primaryKey"`
	MenuID        uint     `json:"menuId" gorm:"column:menu_id;not null"`
	IngredienteID uint     `json:"ingredienteId" gorm:"column:ingrediente_id;not null"`
	Cantidad      *float64 `json:"cantidad,omitempty" gorm:"type:decimal(10,2)"`

	Menu        *Menu        `json:"-" gorm:"foreignKey:MenuID;references:MenuID"`
	Ingrediente *Ingrediente `json:"-" gorm:"foreignKey:IngredienteID;references:IngredienteID"`
}

func (SeleccionIngrediente) TableName() string { return "selecciones_ingredientes" }

// SeleccionDetalle is the read shape of a selection joined with its ingredient.
type SeleccionDetalle struct {
	SeleccionID       uint     `json:"seleccionId"`
	MenuID            uint     `json:"menuId"`
	IngredienteID     uint     `json:"ingredienteId"`
	Cantidad          *float64 `json:"cantidad,omitempty"`
	NombreIngrediente string   `json:"nombreIngrediente"`
	Calorias          string   `json:"calorias"`
}
