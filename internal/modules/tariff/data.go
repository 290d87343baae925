// README: Built-in tariff dataset (distance from the Monterrey depot, MXN base prices).
package tariff

// DefaultRows returns a fresh copy of the built-in dataset. Price columns follow
// VehicleKeys order: 1.TON, 1.5 TON, 3.5 TON, 5.5 TON, RABON, TORTON, TRAILER 48, TRAILER 53.
func DefaultRows() []Row {
	data := []struct {
		destination string
		state       string
		distanceKm  float64
		prices      [8]float64
	}{
		{"Monterrey", "Nuevo León", 12, [8]float64{1900, 2350, 3400, 4450, 5500, 7150, 9950, 11500}},
		{"Guadalupe", "Nuevo León", 9, [8]float64{1900, 2300, 3350, 4350, 5400, 7050, 9850, 11400}},
		{"San Nicolás de los Garza", "Nuevo León", 14, [8]float64{1950, 2350, 3400, 4450, 5500, 7200, 10050, 11600}},
		{"Apodaca", "Nuevo León", 22, [8]float64{2000, 2450, 3550, 4600, 5700, 7450, 10350, 11900}},
		{"General Escobedo", "Nuevo León", 20, [8]float64{2000, 2400, 3500, 4600, 5650, 7400, 10250, 11850}},
		{"Santa Catarina", "Nuevo León", 18, [8]float64{1950, 2400, 3450, 4550, 5600, 7300, 10200, 11750}},
		{"San Pedro Garza García", "Nuevo León", 10, [8]float64{1900, 2300, 3350, 4400, 5450, 7100, 9900, 11400}},
		{"García", "Nuevo León", 38, [8]float64{2150, 2600, 3750, 4900, 6050, 7900, 10950, 12600}},
		{"Cadereyta Jiménez", "Nuevo León", 37, [8]float64{2150, 2600, 3750, 4900, 6050, 7850, 10900, 12550}},
		{"Linares", "Nuevo León", 145, [8]float64{3100, 3800, 5400, 6950, 8550, 11000, 15000, 17100}},
		{"Sabinas Hidalgo", "Nuevo León", 115, [8]float64{2850, 3450, 4900, 6400, 7850, 10150, 13850, 15850}},
		{"Reynosa", "Tamaulipas", 220, [8]float64{3800, 4600, 6500, 8400, 10250, 13200, 17850, 20250}},
		{"Matamoros", "Tamaulipas", 320, [8]float64{4700, 5700, 8000, 10300, 12550, 16100, 21650, 24450}},
		{"Nuevo Laredo", "Tamaulipas", 225, [8]float64{3800, 4700, 6600, 8500, 10400, 13300, 18050, 20450}},
		{"Ciudad Victoria", "Tamaulipas", 285, [8]float64{4350, 5350, 7500, 9600, 11750, 15050, 20350, 22950}},
		{"Tampico", "Tamaulipas", 510, [8]float64{6400, 7800, 10850, 13900, 16950, 21600, 28900, 32400}},
		{"Ciudad Madero", "Tamaulipas", 515, [8]float64{6450, 7850, 10900, 14000, 17050, 21750, 29050, 32650}},
		{"Altamira", "Tamaulipas", 495, [8]float64{6250, 7650, 10600, 13600, 16600, 21150, 28300, 31800}},
		{"Río Bravo", "Tamaulipas", 235, [8]float64{3900, 4800, 6700, 8650, 10600, 13600, 18450, 20850}},
		{"Saltillo", "Coahuila", 85, [8]float64{2550, 3150, 4500, 5800, 7150, 9250, 12750, 14550}},
		{"Ramos Arizpe", "Coahuila", 80, [8]float64{2500, 3100, 4400, 5700, 7050, 9100, 12550, 14350}},
		{"Monclova", "Coahuila", 195, [8]float64{3550, 4350, 6100, 7900, 9700, 12450, 16900, 19200}},
		{"Piedras Negras", "Coahuila", 410, [8]float64{5500, 6700, 9350, 12000, 14650, 18700, 25100, 28200}},
		{"Torreón", "Coahuila", 335, [8]float64{4800, 5900, 8200, 10550, 12900, 16500, 22250, 25050}},
		{"Matamoros", "Coahuila", 355, [8]float64{5000, 6100, 8500, 10950, 13350, 17100, 23000, 25900}},
		{"San Luis Potosí", "San Luis Potosí", 515, [8]float64{6450, 7850, 10900, 14000, 17050, 21750, 29050, 32650}},
		{"Ciudad Valles", "San Luis Potosí", 480, [8]float64{6100, 7500, 10400, 13300, 16250, 20700, 27750, 31150}},
		{"Zacatecas", "Zacatecas", 455, [8]float64{5900, 7200, 10000, 12850, 15650, 20000, 26800, 30100}},
		{"Guadalupe", "Zacatecas", 460, [8]float64{5950, 7250, 10100, 12950, 15800, 20150, 27000, 30300}},
		{"Fresnillo", "Zacatecas", 500, [8]float64{6300, 7700, 10700, 13700, 16700, 21300, 28500, 32000}},
		{"Durango", "Durango", 585, [8]float64{7050, 8650, 12000, 15300, 18650, 23750, 31750, 35550}},
		{"Gómez Palacio", "Durango", 340, [8]float64{4850, 5950, 8300, 10650, 13000, 16650, 22400, 25300}},
		{"Chihuahua", "Chihuahua", 790, [8]float64{8900, 10900, 15050, 19200, 23350, 29700, 39500, 44200}},
		{"Ciudad Juárez", "Chihuahua", 1150, [8]float64{12150, 14850, 20450, 26050, 31650, 40150, 53200, 59300}},
		{"Aguascalientes", "Aguascalientes", 580, [8]float64{7000, 8600, 11900, 15200, 18550, 23600, 31550, 35350}},
		{"León", "Guanajuato", 650, [8]float64{7650, 9350, 12950, 16550, 20150, 25650, 34200, 38300}},
		{"Celaya", "Guanajuato", 760, [8]float64{8650, 10550, 14600, 18650, 22700, 28850, 38400, 42900}},
		{"Irapuato", "Guanajuato", 705, [8]float64{8150, 9950, 13800, 17600, 21400, 27250, 36300, 40600}},
		{"Querétaro", "Querétaro", 730, [8]float64{8350, 10250, 14150, 18050, 22000, 27950, 37250, 41650}},
		{"Guadalajara", "Jalisco", 790, [8]float64{8900, 10900, 15050, 19200, 23350, 29700, 39500, 44200}},
		{"Tlaquepaque", "Jalisco", 795, [8]float64{8950, 10950, 15100, 19300, 23500, 29850, 39700, 44400}},
		{"Zapopan", "Jalisco", 800, [8]float64{9000, 11000, 15200, 19400, 23600, 30000, 39900, 44600}},
		{"Toluca", "Estado de México", 930, [8]float64{10150, 12450, 17150, 21850, 26600, 33750, 44850, 50050}},
		{"Tlalnepantla de Baz", "Estado de México", 905, [8]float64{9950, 12150, 16800, 21400, 26000, 33050, 43900, 49000}},
		{"Puebla", "Puebla", 1030, [8]float64{11050, 13550, 18650, 23750, 28900, 36650, 48650, 54250}},
		{"Veracruz", "Veracruz", 1060, [8]float64{11350, 13850, 19100, 24350, 29600, 37550, 49800, 55500}},
		{"Xalapa", "Veracruz", 990, [8]float64{10700, 13100, 18050, 23000, 27950, 35500, 47100, 52600}},
		{"Morelia", "Michoacán", 900, [8]float64{9900, 12100, 16700, 21300, 25900, 32900, 43700, 48800}},
		{"Mérida", "Yucatán", 2150, [8]float64{21150, 25850, 35450, 45050, 54650, 69150, 91200, 101300}},
		{"Cancún", "Quintana Roo", 2460, [8]float64{23950, 29250, 40100, 50950, 61800, 78150, 103000, 114300}},
		{"Hermosillo", "Sonora", 1450, [8]float64{14850, 18150, 24950, 31750, 38550, 48850, 64600, 71900}},
		{"Culiacán", "Sinaloa", 1340, [8]float64{13850, 16950, 23300, 29650, 36000, 45650, 60400, 67300}},
		{"Tijuana", "Baja California", 2300, [8]float64{22500, 27500, 37700, 47900, 58100, 73500, 96900, 107600}},
		{"Mexicali", "Baja California", 2120, [8]float64{20900, 25500, 35000, 44500, 53950, 68300, 90050, 100050}},
	}

	rows := make([]Row, 0, len(data))
	for _, d := range data {
		prices := make(map[VehicleKey]float64, len(vehicleKeys))
		for i, key := range vehicleKeys {
			prices[key] = d.prices[i]
		}
		rows = append(rows, Row{
			Destination: d.destination,
			State:       d.state,
			DistanceKm:  d.distanceKm,
			Prices:      prices,
		})
	}
	return rows
}
