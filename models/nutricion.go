package models

import "time"

type CategoriaIngrediente struct {
	CategoriaID uint   `json:"categoriaId" gorm:"column:categoria_id;primaryKey"`
	Nombre      string `json:"nombre" gorm:"size:50;not null"`
}

func (CategoriaIngrediente) TableName() string { return "categorias_ingredientes" }

type Ingrediente struct {
	IngredienteID     uint    `json:"ingredienteId" gorm:"column:ingrediente_id;primaryKey"`
	Nombre            string  `json:"nombre" gorm:"size:100;not null"`
	CategoriaID       uint    `json:"categoriaId" gorm:"column:categoria_id;not null"`
	Calorias          string  `json:"calorias" gorm:"size:100;default:None"`
	Fit               bool    `json:"fit" gorm:"default:false"`
	DisponibleBogota  bool    `json:"disponibleBogota" gorm:"column:disponible_bogota;default:true"`
	Fotografia        *string `json:"fotografia,omitempty" gorm:"size:255"`

	Categoria *CategoriaIngrediente `json:"-" gorm:"foreignKey:CategoriaID;references:CategoriaID"`
}

func (Ingrediente) TableName() string { return "ingredientes" }

type MetodoPreparacion struct {
	MetodoID    uint    `json:"metodoId" gorm:"column:metodo_id;primaryKey"`
	Nombre      string  `json:"nombre" gorm:"size:100;not null"`
	Descripcion *string `json:"descripcion,omitempty" gorm:"type:text"`
}

func (MetodoPreparacion) TableName() string { return "metodos_preparacion" }

// TipoComida classifies recipes (desayuno, almuerzo, ...).
type TipoComida struct {
	TipoComidaID uint   `json:"tipoComidaId" gorm:"column:tipo_comida_id;primaryKey"`
	Nombre       string `json:"nombre" gorm:"size:50;not null"`
}

func (TipoComida) TableName() string { return "tipos_comida" }

// Comida is the meal slot a menu is planned for. It is a separate catalog from
// TipoComida: menus reference comidas, recipes reference tipos_comida.
type Comida struct {
	ComidaID uint   `json:"comidaId" gorm:"column:comida_id;primaryKey"`
	Nombre   string `json:"nombre" gorm:"size:50;not null"`
}

func (Comida) TableName() string { return "comidas" }

type Receta struct {
	RecetaID          uint   `json:"recetaId" gorm:"column:receta_id;primaryKey"`
	Nombre            string `json:"nombre" gorm:"size:100;not null"`
	TipoComidaID      uint   `json:"tipoComidaId" gorm:"column:tipo_comida_id;not null"`
	Fit               bool   `json:"fit" gorm:"default:false"`
	Instrucciones     string `json:"instrucciones" gorm:"type:text;not null"`
	TiempoPreparacion *int   `json:"tiempoPreparacion,omitempty" gorm:"column:tiempo_preparacion"`
	DisponibleBogota  bool   `json:"disponibleBogota" gorm:"column:disponible_bogota;default:true"`
	MetodoID          *uint  `json:"metodoId,omitempty" gorm:"column:metodo_id"`

	TipoComida *TipoComida        `json:"-" gorm:"foreignKey:TipoComidaID;references:TipoComidaID"`
	Metodo     *MetodoPreparacion `json:"-" gorm:"foreignKey:MetodoID;references:MetodoID"`
}

func (Receta) TableName() string { return "recetas" }

// RecetaIngrediente links a recipe with one of its ingredients.
type RecetaIngrediente struct {
	RecetaID      uint     `json:"recetaId" gorm:"column:receta_id;primaryKey;autoIncrement:false"`
	IngredienteID uint     `json:"ingredienteId" gorm:"column:ingrediente_id;primaryKey;autoIncrement:false"`
	Cantidad      *float64 `json:"cantidad,omitempty" gorm:"type:decimal(10,2)"`
	Unidad        *string  `json:"unidad,omitempty" gorm:"size:50"`
}

func (RecetaIngrediente) TableName() string { return "receta_ingredientes" }

// RecetaIngredienteDetalle is the read shape of a link row joined with the
// ingredient name.
type RecetaIngredienteDetalle struct {
	RecetaID          uint     `json:"recetaId"`
	IngredienteID     uint     `json:"ingredienteId"`
	NombreIngrediente string   `json:"nombreIngrediente"`
	Cantidad          *float64 `json:"cantidad,omitempty"`
	Unidad            *string  `json:"unidad,omitempty"`
}

type RecetaGuardada struct {
	GuardadoID         uint      `json:"guardadoId" gorm:"column:guardado_id;primaryKey"`
	UsuarioID          uint      `json:"usuarioId" gorm:"column:usuario_id;not null"`
	RecetaID           uint      `json:"recetaId" gorm:"column:receta_id;not null"`
	FechaGuardado      time.Time `json:"fechaGuardado" gorm:"column:fecha_guardado;autoCreateTime"`
	ComentarioPersonal *string   `json:"comentarioPersonal,omitempty" gorm:"column:comentario_personal;type:text"`
}

func (RecetaGuardada) TableName() string { return "recetas_guardadas" }

type RecetaGuardadaDetalle struct {
	GuardadoID         uint      `json:"guardadoId"`
	UsuarioID          uint      `json:"usuarioId"`
	RecetaID           uint      `json:"recetaId"`
	FechaGuardado      time.Time `json:"fechaGuardado"`
	ComentarioPersonal *string   `json:"comentarioPersonal,omitempty"`
	NombreReceta       string    `json:"nombreReceta"`
}
