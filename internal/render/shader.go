package render

import rl "github.com/gen2brain/raylib-go/raylib"

// Light is the directional light and ambient term shared by every lit draw.
type Light struct {
	Dir       [3]float32 // direction to the light
	Ambient   [4]float32
	Color     [3]float32
	Intensity float32
	SpecPower float32
	SpecStr   float32
}

// NightLight is a dim moonlight so emissive screens and fireflies read well.
func NightLight() Light {
	return Light{
		Dir:       [3]float32{0.4, 1, 0.3},
		Ambient:   [4]float32{0.16, 0.17, 0.24, 1},
		Color:     [3]float32{0.75, 0.8, 1},
		Intensity: 0.6,
		SpecPower: 48,
		SpecStr:   0.25,
	}
}

func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

func loadLitTexturedShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litTexturedFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
	// Textures are posters and screens: keep most of their own brightness so
	// they stay readable at night.
	litTexturedFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
uniform sampler2D texture0;
out vec4 finalColor;
void main() {
  vec4 tint = texture(texture0, fragTexCoord) * colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  float NdotL = max(dot(N, L), 0.0);
  vec3 lit = tint.rgb * (0.7 + 0.3 * NdotL * lightIntensity) + ambient.rgb * 0.1;
  finalColor = vec4(lit, tint.a);
}
`
)

// setUniforms uploads the frame's view position and light to shader.
func (p *Primitives) setUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	l := p.light
	viewPos := [3]float32{p.viewPos[0], p.viewPos[1], p.viewPos[2]}
	dir := l.Dir
	amb := l.Ambient
	col := l.Color
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, dir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, col[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{l.Intensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{l.SpecPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{l.SpecStr}, rl.ShaderUniformFloat)
	}
}
