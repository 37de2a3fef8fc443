// Package trajectory turns a loaded pendulum table into plottable figures.
//
// Column 0 of the table is time, column 1 the angle, column 2 the angular
// velocity. [Build] pairs them up per [Kind]:
//
//	angle             (time, angle)
//	angular_velocity  (time, angular velocity)
//	energy            (time, -cos(angle) + angular_velocity²/2)
//	phase             (angle, angular velocity)
package trajectory
