package strategy

// defaultVPWTables holds the built-in VPW withdrawal percentages (0-10
// scale) by equity allocation bucket and age, ages 45 through 95.
var defaultVPWTables = VPWTable{
	20: {
		45: 3.0, 46: 3.0, 47: 3.1, 48: 3.1, 49: 3.2, 50: 3.2,
		51: 3.3, 52: 3.3, 53: 3.4, 54: 3.4, 55: 3.5, 56: 3.6,
		57: 3.6, 58: 3.7, 59: 3.8, 60: 3.9, 61: 4.0, 62: 4.1,
		63: 4.2, 64: 4.3, 65: 4.4, 66: 4.5, 67: 4.6, 68: 4.8,
		69: 4.9, 70: 5.0, 71: 5.2, 72: 5.3, 73: 5.5, 74: 5.6,
		75: 5.8, 76: 6.0, 77: 6.2, 78: 6.4, 79: 6.6, 80: 6.8,
		81: 7.1, 82: 7.3, 83: 7.6, 84: 7.9, 85: 8.2, 86: 8.5,
		87: 8.8, 88: 9.2, 89: 9.6, 90: 10.0, 91: 10.0, 92: 10.0,
		93: 10.0, 94: 10.0, 95: 10.0,
	},
	40: {
		45: 2.7, 46: 2.7, 47: 2.8, 48: 2.8, 49: 2.9, 50: 2.9,
		51: 3.0, 52: 3.0, 53: 3.1, 54: 3.1, 55: 3.2, 56: 3.2,
		57: 3.3, 58: 3.4, 59: 3.4, 60: 3.5, 61: 3.6, 62: 3.7,
		63: 3.8, 64: 3.9, 65: 4.0, 66: 4.1, 67: 4.2, 68: 4.3,
		69: 4.4, 70: 4.5, 71: 4.7, 72: 4.8, 73: 4.9, 74: 5.1,
		75: 5.2, 76: 5.4, 77: 5.6, 78: 5.8, 79: 6.0, 80: 6.2,
		81: 6.4, 82: 6.6, 83: 6.9, 84: 7.2, 85: 7.5, 86: 7.8,
		87: 8.1, 88: 8.5, 89: 8.9, 90: 9.3, 91: 9.7, 92: 10.0,
		93: 10.0, 94: 10.0, 95: 10.0,
	},
	60: {
		45: 2.5, 46: 2.5, 47: 2.6, 48: 2.6, 49: 2.6, 50: 2.7,
		51: 2.7, 52: 2.8, 53: 2.8, 54: 2.9, 55: 2.9, 56: 3.0,
		57: 3.0, 58: 3.1, 59: 3.1, 60: 3.2, 61: 3.3, 62: 3.3,
		63: 3.4, 64: 3.5, 65: 3.6, 66: 3.7, 67: 3.8, 68: 3.9,
		69: 4.0, 70: 4.1, 71: 4.2, 72: 4.3, 73: 4.4, 74: 4.6,
		75: 4.7, 76: 4.9, 77: 5.0, 78: 5.2, 79: 5.4, 80: 5.6,
		81: 5.8, 82: 6.0, 83: 6.3, 84: 6.5, 85: 6.8, 86: 7.1,
		87: 7.4, 88: 7.8, 89: 8.2, 90: 8.6, 91: 9.0, 92: 9.5,
		93: 10.0, 94: 10.0, 95: 10.0,
	},
	80: {
		45: 2.3, 46: 2.3, 47: 2.4, 48: 2.4, 49: 2.4, 50: 2.5,
		51: 2.5, 52: 2.5, 53: 2.6, 54: 2.6, 55: 2.7, 56: 2.7,
		57: 2.8, 58: 2.8, 59: 2.9, 60: 2.9, 61: 3.0, 62: 3.0,
		63: 3.1, 64: 3.2, 65: 3.3, 66: 3.3, 67: 3.4, 68: 3.5,
		69: 3.6, 70: 3.7, 71: 3.8, 72: 3.9, 73: 4.0, 74: 4.1,
		75: 4.2, 76: 4.4, 77: 4.5, 78: 4.7, 79: 4.8, 80: 5.0,
		81: 5.2, 82: 5.4, 83: 5.6, 84: 5.9, 85: 6.1, 86: 6.4,
		87: 6.7, 88: 7.1, 89: 7.4, 90: 7.8, 91: 8.3, 92: 8.8,
		93: 9.3, 94: 9.8, 95: 10.0,
	},
}
