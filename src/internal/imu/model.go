package imu

import "time"

// DataPoint is one wire-format IMU sample. Every sensor field is optional:
// not every device exposes every sensor, only the timestamp is mandatory.
type DataPoint struct {
	Timestamp      int64  `json:"timestamp" bson:"timestamp"`
	TimestampNanos *int64 `json:"timestamp_nanos,omitempty" bson:"timestamp_nanos,omitempty"`

	// Calibrated accelerometer, gyroscope, magnetometer
	AccelX *float32 `json:"accel_x,omitempty" bson:"accel_x,omitempty"`
	AccelY *float32 `json:"accel_y,omitempty" bson:"accel_y,omitempty"`
	AccelZ *float32 `json:"accel_z,omitempty" bson:"accel_z,omitempty"`
	GyroX  *float32 `json:"gyro_x,omitempty" bson:"gyro_x,omitempty"`
	GyroY  *float32 `json:"gyro_y,omitempty" bson:"gyro_y,omitempty"`
	GyroZ  *float32 `json:"gyro_z,omitempty" bson:"gyro_z,omitempty"`
	MagX   *float32 `json:"mag_x,omitempty" bson:"mag_x,omitempty"`
	MagY   *float32 `json:"mag_y,omitempty" bson:"mag_y,omitempty"`
	MagZ   *float32 `json:"mag_z,omitempty" bson:"mag_z,omitempty"`

	// Derived motion vectors
	GravityX     *float32 `json:"gravity_x,omitempty" bson:"gravity_x,omitempty"`
	GravityY     *float32 `json:"gravity_y,omitempty" bson:"gravity_y,omitempty"`
	GravityZ     *float32 `json:"gravity_z,omitempty" bson:"gravity_z,omitempty"`
	LinearAccelX *float32 `json:"linear_accel_x,omitempty" bson:"linear_accel_x,omitempty"`
	LinearAccelY *float32 `json:"linear_accel_y,omitempty" bson:"linear_accel_y,omitempty"`
	LinearAccelZ *float32 `json:"linear_accel_z,omitempty" bson:"linear_accel_z,omitempty"`

	// Uncalibrated accelerometer with bias estimate
	AccelUncalX *float32 `json:"accel_uncal_x,omitempty" bson:"accel_uncal_x,omitempty"`
	AccelUncalY *float32 `json:"accel_uncal_y,omitempty" bson:"accel_uncal_y,omitempty"`
	AccelUncalZ *float32 `json:"accel_uncal_z,omitempty" bson:"accel_uncal_z,omitempty"`
	AccelBiasX  *float32 `json:"accel_bias_x,omitempty" bson:"accel_bias_x,omitempty"`
	AccelBiasY  *float32 `json:"accel_bias_y,omitempty" bson:"accel_bias_y,omitempty"`
	AccelBiasZ  *float32 `json:"accel_bias_z,omitempty" bson:"accel_bias_z,omitempty"`

	// Uncalibrated gyroscope with drift estimate
	GyroUncalX *float32 `json:"gyro_uncal_x,omitempty" bson:"gyro_uncal_x,omitempty"`
	GyroUncalY *float32 `json:"gyro_uncal_y,omitempty" bson:"gyro_uncal_y,omitempty"`
	GyroUncalZ *float32 `json:"gyro_uncal_z,omitempty" bson:"gyro_uncal_z,omitempty"`
	GyroDriftX *float32 `json:"gyro_drift_x,omitempty" bson:"gyro_drift_x,omitempty"`
	GyroDriftY *float32 `json:"gyro_drift_y,omitempty" bson:"gyro_drift_y,omitempty"`
	GyroDriftZ *float32 `json:"gyro_drift_z,omitempty" bson:"gyro_drift_z,omitempty"`

	// Uncalibrated magnetometer with bias estimate
	MagUncalX *float32 `json:"mag_uncal_x,omitempty" bson:"mag_uncal_x,omitempty"`
	MagUncalY *float32 `json:"mag_uncal_y,omitempty" bson:"mag_uncal_y,omitempty"`
	MagUncalZ *float32 `json:"mag_uncal_z,omitempty" bson:"mag_uncal_z,omitempty"`
	MagBiasX  *float32 `json:"mag_bias_x,omitempty" bson:"mag_bias_x,omitempty"`
	MagBiasY  *float32 `json:"mag_bias_y,omitempty" bson:"mag_bias_y,omitempty"`
	MagBiasZ  *float32 `json:"mag_bias_z,omitempty" bson:"mag_bias_z,omitempty"`

	// Rotation quaternions: device, game, geomagnetic
	RotationVectorX *float32 `json:"rotation_vector_x,omitempty" bson:"rotation_vector_x,omitempty"`
	RotationVectorY *float32 `json:"rotation_vector_y,omitempty" bson:"rotation_vector_y,omitempty"`
	RotationVectorZ *float32 `json:"rotation_vector_z,omitempty" bson:"rotation_vector_z,omitempty"`
	RotationVectorW *float32 `json:"rotation_vector_w,omitempty" bson:"rotation_vector_w,omitempty"`
	GameRotationX   *float32 `json:"game_rotation_x,omitempty" bson:"game_rotation_x,omitempty"`
	GameRotationY   *float32 `json:"game_rotation_y,omitempty" bson:"game_rotation_y,omitempty"`
	GameRotationZ   *float32 `json:"game_rotation_z,omitempty" bson:"game_rotation_z,omitempty"`
	GameRotationW   *float32 `json:"game_rotation_w,omitempty" bson:"game_rotation_w,omitempty"`
	GeomagRotationX *float32 `json:"geomag_rotation_x,omitempty" bson:"geomag_rotation_x,omitempty"`
	GeomagRotationY *float32 `json:"geomag_rotation_y,omitempty" bson:"geomag_rotation_y,omitempty"`
	GeomagRotationZ *float32 `json:"geomag_rotation_z,omitempty" bson:"geomag_rotation_z,omitempty"`
	GeomagRotationW *float32 `json:"geomag_rotation_w,omitempty" bson:"geomag_rotation_w,omitempty"`

	// Environmental sensors
	Pressure    *float32 `json:"pressure,omitempty" bson:"pressure,omitempty"`
	Temperature *float32 `json:"temperature,omitempty" bson:"temperature,omitempty"`
	Light       *float32 `json:"light,omitempty" bson:"light,omitempty"`
	Humidity    *float32 `json:"humidity,omitempty" bson:"humidity,omitempty"`
	Proximity   *float32 `json:"proximity,omitempty" bson:"proximity,omitempty"`

	// Step sensors
	StepCounter  *int  `json:"step_counter,omitempty" bson:"step_counter,omitempty"`
	StepDetected *bool `json:"step_detected,omitempty" bson:"step_detected,omitempty"`

	// Euler angles
	Roll    *float32 `json:"roll,omitempty" bson:"roll,omitempty"`
	Pitch   *float32 `json:"pitch,omitempty" bson:"pitch,omitempty"`
	Yaw     *float32 `json:"yaw,omitempty" bson:"yaw,omitempty"`
	Heading *float32 `json:"heading,omitempty" bson:"heading,omitempty"`

	// GPS
	Latitude    *float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`
	Altitude    *float64 `json:"altitude,omitempty" bson:"altitude,omitempty"`
	GpsAccuracy *float32 `json:"gps_accuracy,omitempty" bson:"gps_accuracy,omitempty"`
	Speed       *float32 `json:"speed,omitempty" bson:"speed,omitempty"`
}

// Record is the stored form of a DataPoint with attribution.
type Record struct {
	SessionID *string   `bson:"session_id,omitempty"`
	UserID    *string   `bson:"user_id,omitempty"`
	IsSynced  bool      `bson:"is_synced"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`

	DataPoint `bson:",inline"`
}

// QueueMessage is the payload handed to the broker in queue-offload mode.
// The consumer performs the same record mapping as the direct-write path.
type QueueMessage struct {
	SessionID  *string     `json:"session_id"`
	UserID     *string     `json:"user_id"`
	DataPoints []DataPoint `json:"data_points"`
	ReceivedAt time.Time   `json:"received_at"`
}

type UploadRequest struct {
	SessionID  *string     `json:"session_id"`
	DataPoints []DataPoint `json:"data_points"`
}

type UploadResponse struct {
	PointsReceived int     `json:"points_received"`
	SessionID      *string `json:"session_id"`
}
