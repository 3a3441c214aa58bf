package perception

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/annel0/voxel-perception/internal/vec"
)

const hullFeasTol = 1e-7

// InHull проверяет, лежит ли точка x в выпуклой оболочке набора points:
// существует ли неотрицательная комбинация точек с суммой коэффициентов 1,
// равная x. Тест сводится к задаче допустимости линейной программы и
// решается первой фазой симплекс-метода: к ограничениям
//
//	[P^T; 1...1] · λ = [x; 1],  λ ≥ 0
//
// добавляются искусственные переменные, минимизируется их сумма; точка
// внутри оболочки тогда и только тогда, когда оптимум равен нулю.
// Любая ошибка решателя трактуется как "вне оболочки", не как сбой.
func InHull(points []vec.Vec3Float, x vec.Vec3Float) bool {
	n := len(points)
	if n == 0 {
		return false
	}

	const m = 4 // Три координатных ограничения и сумма коэффициентов

	b := []float64{x.X, x.Y, x.Z, 1}
	rows := make([][]float64, m)
	for r := 0; r < m; r++ {
		rows[r] = make([]float64, n+m)
	}
	for col, p := range points {
		rows[0][col] = p.X
		rows[1][col] = p.Y
		rows[2][col] = p.Z
		rows[3][col] = 1
	}

	// Искусственные переменные: единичная подматрица со знаком строки b,
	// чтобы стартовый базис был допустимым при любых знаках координат.
	for r := 0; r < m; r++ {
		sign := 1.0
		if b[r] < 0 {
			sign = -1.0
		}
		rows[r][n+r] = sign
	}

	c := make([]float64, n+m)
	for r := 0; r < m; r++ {
		c[n+r] = 1 // Минимизируем сумму искусственных переменных
	}

	a := mat.NewDense(m, n+m, nil)
	for r := 0; r < m; r++ {
		a.SetRow(r, rows[r])
	}

	opt, _, err := lp.Simplex(c, a, b, 0, nil)
	if err != nil {
		return false
	}
	return opt < hullFeasTol
}
